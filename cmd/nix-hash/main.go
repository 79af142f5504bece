// Command nix-hash is a small CLI front end over package hash: computing
// digests, reformatting their textual encoding, and converting to and from
// CIDv1 strings.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zseri/nix/hash"
	"github.com/zseri/nix/store"
	"github.com/zseri/nix/store/memstore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "hash":
		return cmdHash(args[1:], out, errOut)
	case "convert":
		return cmdConvert(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "from-cid":
		return cmdFromCID(args[1:], out, errOut)
	case "derive-path":
		return cmdDerivePath(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "nix-hash: digest, encode, and convert content-address hashes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nix-hash hash --type <md5|sha1|sha256|sha512> [--format <base16|base32|base64|sri>] [file ...]")
	fmt.Fprintln(w, "  nix-hash convert --format <base16|base32|base64|sri> [--type <type>] <hash>")
	fmt.Fprintln(w, "  nix-hash cid --type <type> <hash>")
	fmt.Fprintln(w, "  nix-hash from-cid <cid>")
	fmt.Fprintln(w, "  nix-hash derive-path [--config <file>] [--store-dir <dir>] --type <type> --name <name> <hash>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no files, 'hash' hashes standard input.")
}

func parseType(s string) (hash.HashType, error) {
	if s == "" {
		s = "sha256"
	}
	return hash.ParseHashType(s)
}

func parseFormat(s string) (hash.HashFormat, error) {
	if s == "" {
		s = "base32"
	}
	return hash.ParseHashFormat(s)
}

func cmdHash(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(errOut)
	typeFlag := fs.String("type", "sha256", "digest algorithm")
	formatFlag := fs.String("format", "base32", "output encoding")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	typ, err := parseType(*typeFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	format, err := parseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{""}
	}

	status := 0
	for _, f := range files {
		h, _, err := hashFile(typ, f)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", displayName(f), err)
			status = 1
			continue
		}
		rendered := h.ToString(format, true)
		if f == "" {
			fmt.Fprintln(out, rendered)
		} else {
			fmt.Fprintf(out, "%s  %s\n", rendered, f)
		}
	}
	return status
}

func displayName(f string) string {
	if f == "" {
		return "<stdin>"
	}
	return f
}

func hashFile(typ hash.HashType, path string) (hash.Hash, uint64, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return hash.Hash{}, 0, err
		}
		defer f.Close()
		r = f
	}

	sink := hash.NewHashSink(typ)
	if _, err := io.Copy(sink, r); err != nil {
		return hash.Hash{}, 0, err
	}
	h, n := sink.Finish()
	return h, n, nil
}

func cmdConvert(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)
	typeFlag := fs.String("type", "", "expected algorithm, optional")
	formatFlag := fs.String("format", "base32", "output encoding")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: nix-hash convert --format <format> [--type <type>] <hash>")
		return 2
	}

	format, err := parseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	var expected *hash.HashType
	if *typeFlag != "" {
		t, err := hash.ParseHashType(*typeFlag)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		expected = &t
	}

	h, err := hash.ParseAny(fs.Arg(0), expected)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, h.ToString(format, true))
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	typeFlag := fs.String("type", "sha256", "algorithm of the given hash")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: nix-hash cid --type <type> <hash>")
		return 2
	}

	typ, err := parseType(*typeFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	h, err := hash.ParseAny(fs.Arg(0), &typ)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	c, err := hash.ToCID(h)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, c.String())
	return 0
}

func cmdDerivePath(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("derive-path", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configFlag := fs.String("config", "", "path to a JSON memstore config file")
	storeDirFlag := fs.String("store-dir", "", "store directory prefix (overrides --config)")
	typeFlag := fs.String("type", "sha256", "algorithm of the given hash")
	nameFlag := fs.String("name", "", "path name")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *nameFlag == "" {
		fmt.Fprintln(errOut, "usage: nix-hash derive-path [--config <file>] [--store-dir <dir>] --type <type> --name <name> <hash>")
		return 2
	}

	cfg := memstore.Config{}
	if *configFlag != "" {
		var err error
		cfg, err = memstore.LoadFile(*configFlag)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
	}
	if *storeDirFlag != "" {
		cfg.StoreDir = *storeDirFlag
	}
	s := cfg.Open()

	typ, err := parseType(*typeFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	h, err := hash.ParseAny(fs.Arg(0), &typ)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	car := store.NewTextInfo(store.TextInfo{Hash: h})
	path := s.MakeFixedOutputPathFromCA(*nameFlag, car)
	fmt.Fprintln(out, s.PrintPath(path))
	return 0
}

func cmdFromCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("from-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	formatFlag := fs.String("format", "sri", "output encoding")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: nix-hash from-cid [--format <format>] <cid>")
		return 2
	}

	format, err := parseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	c, err := parseCIDArg(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	h, err := hash.FromCID(c)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, h.ToString(format, true))
	return 0
}
