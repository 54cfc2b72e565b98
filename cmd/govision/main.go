// Package main provides the GoVision CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/govision-ml/govision/backend/cpu"
	"github.com/govision-ml/govision/serialization"
	"github.com/govision-ml/govision/tvtensors"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("GoVision %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: govision inspect <file>")
				os.Exit(2)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("GoVision - Typed Tensor Entities for Vision Pipelines")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  inspect <file>    List the entities stored in a container file")
}

// inspect loads a container and prints one line per entity.
func inspect(path string) error {
	entities, err := serialization.LoadFile(path, cpu.New())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tv := entities[name]
		fmt.Printf("%-20s %s", name, tv)
		if tv.RequiresGrad() {
			fmt.Print(" requires_grad")
		}
		if tv.Kind() == tvtensors.KindKeyPoints {
			c := tv.CanvasSize()
			fmt.Printf(" canvas=(%d,%d)", c.Height, c.Width)
		}
		fmt.Println()
	}
	return nil
}
