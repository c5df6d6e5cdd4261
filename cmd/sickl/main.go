// Command sickl lowers one of the built-in example programs to GLSL or
// OpenCL source, or dumps its captured AST for inspection. It takes
// "-program <name>" (a built-in Go Source, since these programs are
// host-language code, not parsed text) rather than a path to a source
// file, and writes its output with os.WriteFile under an explicit
// permission constant, failing fast with log.Fatal on misuse.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sickl-lang/sickl"
	"github.com/sickl-lang/sickl/examples/mandelbrot"
)

const defaultWritePermission = 0644 // -rw-r--r--

var programs = map[string]sickl.Source{
	"mandelbrot": mandelbrot.Program{},
}

func main() {
	var (
		programName = flag.String("program", "", "Name of the built-in example program to compile")
		target      = flag.String("target", "glsl", "Output target: 'glsl' or 'opencl'")
		outputPath  = flag.String("output", "/dev/stdout", "Path to the output file")
		astOnly     = flag.Bool("ast-only", false, "Print the captured AST as indented text instead of emitting")
		dotOnly     = flag.Bool("dot-only", false, "Print the captured AST as a Graphviz digraph instead of emitting")
	)
	flag.Parse()

	if *programName == "" {
		log.Fatal("Program not informed; pass -program (e.g. -program mandelbrot)")
	}

	src, ok := programs[*programName]
	if !ok {
		log.Fatalf("Unknown program %q", *programName)
	}

	root := sickl.Parse(src)

	if *astOnly {
		fmt.Print(sickl.PrintTree(root))
		return
	}

	if *dotOnly {
		fmt.Print(sickl.PrintDot(root))
		return
	}

	cfg := sickl.NewConfig()

	var (
		output string
		err    error
	)
	switch *target {
	case "glsl":
		output, err = sickl.CompileGLSL(root, cfg)
	case "opencl":
		output, err = sickl.CompileOpenCL(root, cfg)
	default:
		log.Fatalf("Target %q not supported; use 'glsl' or 'opencl'", *target)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outputPath, []byte(output), defaultWritePermission); err != nil {
		log.Fatalf("Can't write output: %s", err.Error())
	}
}
