// seehuhn.de/go/pdfsplice - merge and split PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdf-splice merges PDF files and splits them by page range.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"seehuhn.de/go/pdfsplice"
	"seehuhn.de/go/pdfsplice/tools/internal/buildinfo"
	"seehuhn.de/go/pdfsplice/tools/internal/profile"
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdf-splice - merge and split PDF files\n")
	fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-splice"))
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice merge [options] <input1.pdf> <input2.pdf> ...\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice split [options] <input.pdf>\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice pages [options] <input.pdf>\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  merge   concatenate PDF files, in the given order\n")
	fmt.Fprintf(os.Stderr, "  split   copy page ranges into separate PDF files\n")
	fmt.Fprintf(os.Stderr, "  pages   show the number of pages of a PDF file\n\n")
	fmt.Fprintf(os.Stderr, "Run \"pdf-splice <command> -h\" for the options of a command.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice merge -o all.pdf a.pdf b.pdf c.pdf\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice split -ranges \"1-3,7,9-\" -outdir out doc.pdf\n")
	fmt.Fprintf(os.Stderr, "  pdf-splice split -ranges 1-2 -password secret encrypted.pdf\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "merge":
		err = runMerge(os.Args[2:])
	case "split":
		err = runSplit(os.Args[2:])
	case "pages":
		err = runPages(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// commonFlags holds the flags shared by all commands.
type commonFlags struct {
	password   *string
	prompt     *bool
	cpuprofile *string
	memprofile *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		password:   fs.String("password", "", "password for encrypted inputs"),
		prompt:     fs.Bool("prompt", false, "read the password from the terminal"),
		cpuprofile: fs.String("cpuprofile", "", "write cpu profile to `file`"),
		memprofile: fs.String("memprofile", "", "write memory profile to `file`"),
	}
}

// getPassword resolves the -password and -prompt flags.
func (c *commonFlags) getPassword() (string, error) {
	if !*c.prompt {
		return *c.password, nil
	}
	if *c.password != "" {
		return "", errors.New("-password and -prompt cannot be combined")
	}
	fmt.Fprint(os.Stderr, "password: ")
	passwd, err := term.ReadPassword(syscall.Stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}

func runMerge(args []string) error {
	fs := flag.NewFlagSet("pdf-splice merge", flag.ExitOnError)
	var output string
	fs.StringVar(&output, "o", "", "output PDF file (required)")
	fs.StringVar(&output, "output", "", "same as -o")
	overwrite := fs.Bool("overwrite", false, "overwrite the output file if it exists")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdf-splice merge [options] <input1.pdf> <input2.pdf> ...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "error: merge needs at least two input files")
		fs.Usage()
		os.Exit(2)
	}
	if output == "" {
		fmt.Fprintln(os.Stderr, "error: no output file given (use -o)")
		fs.Usage()
		os.Exit(2)
	}

	passwd, err := common.getPassword()
	if err != nil {
		return err
	}

	stop, err := profile.Start(*common.cpuprofile, *common.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	return pdfsplice.Merge(&pdfsplice.MergeOptions{
		Inputs:    fs.Args(),
		Output:    output,
		Password:  passwd,
		Overwrite: *overwrite,
	})
}

func runSplit(args []string) error {
	fs := flag.NewFlagSet("pdf-splice split", flag.ExitOnError)
	ranges := fs.String("ranges", "", "page ranges, e.g. \"1-3,7,9-\" (1-based, inclusive, required)")
	outDir := fs.String("outdir", "", "output directory (default: current directory)")
	namePattern := fs.String("name-pattern", "", "file name pattern using {base}, {page}, {start}, {end}")
	overwrite := fs.Bool("overwrite", false, "overwrite existing output files")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdf-splice split [options] <input.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: split needs exactly one input file")
		fs.Usage()
		os.Exit(2)
	}
	if *ranges == "" {
		fmt.Fprintln(os.Stderr, "error: no page ranges given (use -ranges)")
		fs.Usage()
		os.Exit(2)
	}

	passwd, err := common.getPassword()
	if err != nil {
		return err
	}

	stop, err := profile.Start(*common.cpuprofile, *common.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	return pdfsplice.Split(&pdfsplice.SplitOptions{
		Input:       fs.Arg(0),
		Ranges:      *ranges,
		OutDir:      *outDir,
		NamePattern: *namePattern,
		Password:    passwd,
		Overwrite:   *overwrite,
	})
}

func runPages(args []string) error {
	fs := flag.NewFlagSet("pdf-splice pages", flag.ExitOnError)
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdf-splice pages [options] <input.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: pages needs exactly one input file")
		fs.Usage()
		os.Exit(2)
	}

	passwd, err := common.getPassword()
	if err != nil {
		return err
	}

	stop, err := profile.Start(*common.cpuprofile, *common.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	numPages, err := pdfsplice.NumPages(fs.Arg(0), passwd)
	if err != nil {
		return err
	}
	fmt.Printf("Total pages: %d\n", numPages)
	return nil
}
