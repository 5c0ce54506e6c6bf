package runner

import (
	"io"
	"os"

	"github.com/eaugeas/redblack/container/tree"
	errs "github.com/eaugeas/redblack/errors"
	"github.com/eaugeas/redblack/logs"
	"github.com/eaugeas/redblack/readwrite"
)

// Run reads a key script from in, inserts and then deletes its
// keys, and writes to out the in order and level order traversals
// of the tree after each of the two phases.
func Run(in io.Reader, out io.Writer, logger *logs.Logger) error {
	script, err := readwrite.ReadScript(in)
	if err != nil {
		return err
	}

	t := tree.NewRedBlackTree()

	for _, key := range script.Insert {
		t.Insert(key)
	}
	if err := report(t, "insert", out, logger); err != nil {
		return err
	}

	deleted := 0
	for _, key := range script.Delete {
		if t.Delete(key) {
			deleted++
		} else {
			logger.Debug("key not found", logs.Fields{"key": key})
		}
	}
	logger.Debug("deleted keys", logs.Fields{"requested": len(script.Delete), "deleted": deleted})

	return report(t, "delete", out, logger)
}

func report(t *tree.Tree, phase string, out io.Writer, logger *logs.Logger) error {
	if err := t.Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidTree, err, "tree is not balanced after "+phase)
	}

	logger.Info("phase completed", logs.Fields{
		"phase":  phase,
		"len":    t.Len(),
		"height": t.Height(),
	})

	if err := readwrite.WriteKeys(out, t.InOrder()); err != nil {
		return err
	}

	return readwrite.WriteKeys(out, t.LevelOrder())
}

// RunFiles runs the script at c.Input and writes the result to c.Output
func RunFiles(c *Config, logger *logs.Logger) error {
	in, err := os.Open(c.Input)
	if err != nil {
		return errs.Wrap(errs.ErrCodeReadInput, err, "failed to open input")
	}
	defer in.Close()

	out, err := os.Create(c.Output)
	if err != nil {
		return errs.Wrap(errs.ErrCodeWriteOutput, err, "failed to create output")
	}

	if err := Run(in, out, logger); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeWriteOutput, err, "failed to close output")
	}

	return nil
}
