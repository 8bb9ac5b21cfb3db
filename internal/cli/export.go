package cli

import (
	"fmt"
	"os"

	"github.com/Uniqwrites1/bible-reader/internal/logger"
	"github.com/Uniqwrites1/bible-reader/internal/snapshot"
)

type ExportCmd struct {
	Out string `arg:"" optional:"" help:"Output file (defaults to stdout)."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	data, err := snapshot.Export(ctx.Store)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Out == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	logger.Info("data exported", "file", c.Out, "bytes", len(data))
	fmt.Printf("Exported data to %s\n", c.Out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Snapshot file to import."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if !c.Yes {
		ok, err := confirm("Importing replaces the plans, progress, and settings present in the snapshot. Continue? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := snapshot.Import(ctx.Store, data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	logger.Info("data imported", "file", c.File)
	fmt.Println("Import complete.")
	return nil
}
