package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gfroidcourt/sudoku/internal/generator"
	"github.com/gfroidcourt/sudoku/internal/parser"
	"github.com/gfroidcourt/sudoku/internal/solver"
	"github.com/gfroidcourt/sudoku/pkg/constants"
)

var (
	all        bool
	generate   int
	unique     bool
	outputPath string
	verbose    bool
	version    bool
)

func init() {
	flag.BoolVar(&all, "a", false, "search for all possible solutions")
	flag.BoolVar(&all, "all", false, "search for all possible solutions")
	flag.IntVar(&generate, "g", 0, "generate a grid of size NxN")
	flag.IntVar(&generate, "generate", 0, "generate a grid of size NxN")
	flag.BoolVar(&unique, "u", false, "generate a grid with unique solution")
	flag.BoolVar(&unique, "unique", false, "generate a grid with unique solution")
	flag.StringVar(&outputPath, "o", "", "write output to FILE")
	flag.StringVar(&outputPath, "output", "", "write output to FILE")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.BoolVar(&verbose, "verbose", false, "verbose output")
	flag.BoolVar(&version, "V", false, "display version and exit")
	flag.BoolVar(&version, "version", false, "display version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"Usage:\t%s [-a|-o FILE|-v|-V|-h] FILE...\n"+
				"\t%s -g SIZE [-u|-o FILE|-v|-V|-h]\n"+
				"Solve or generate Sudoku grids of size: 1, 4, 9, 16, 25, 36, 49, 64\n"+
				"\n"+
				"-a,--all\t\tsearch for all possible solutions\n"+
				"-g N,--generate N\tgenerate a grid of size NxN\n"+
				"-o FILE,--output FILE\twrite output to FILE\n"+
				"-u,--unique\t\tgenerate a grid with unique solution\n"+
				"-v,--verbose\t\tverbose output\n"+
				"-V,--version\t\tdisplay version and exit\n"+
				"-h,--help\t\tdisplay this help and exit\n",
			os.Args[0], os.Args[0])
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sudoku: ")
	flag.Parse()

	if version {
		fmt.Printf("sudoku version %s\n"+
			"Solve/generate sudoku grids of size: 1, 4, 9, 16, 25, 36, 49, 64\n",
			constants.Version)
		return
	}

	output := io.Writer(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			log.Fatalf("error opening file: %s: %v", outputPath, err)
		}
		defer file.Close()
		output = file
	}

	if generate > 0 {
		runGenerate(output)
		return
	}

	if unique {
		fmt.Fprintln(os.Stderr, "warning: option 'unique' conflicts with solver mode, disabling it!")
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file specified.")
		fmt.Fprintf(os.Stderr, "Try '%s --help' for more information.\n", os.Args[0])
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		runSolve(path, output)
	}
}

func runGenerate(output io.Writer) {
	if all {
		fmt.Fprintln(os.Stderr, "warning: option 'all' conflicts with generator mode, disabling it!")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "generate grid of size %dx%d\n", generate, generate)
	}

	gen := generator.New(time.Now().UnixNano())
	g, err := gen.Generate(generate, unique)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	g.Write(output)
}

func runSolve(path string, output io.Writer) {
	g, err := parser.ParseFile(path)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "solving %s (size %d)\n", path, g.Size())
	}

	if all {
		count := solver.SolveAll(g, output)
		fmt.Fprintf(output, "Number of solutions: %d\n", count)
		return
	}

	solution := solver.SolveFirst(g)
	if solution == nil {
		fmt.Fprintf(output, "Grid has no solution.\n")
		return
	}
	solution.Write(output)
}
