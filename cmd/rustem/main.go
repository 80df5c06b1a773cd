package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/log"

	"github.com/oarkflow/rustem"
	"github.com/oarkflow/rustem/lib"
	"github.com/oarkflow/rustem/web"
)

var (
	configPtr = flag.String("config", "", "JSON config file")
	filePtr   = flag.String("file", "", "Input file, one or more words per line")
	freqPtr   = flag.Bool("freq", false, "Print a stem frequency table instead of stems")
	topPtr    = flag.Int("top", 0, "Limit the frequency table to the N most frequent stems")
	indexPtr  = flag.String("index", "", "Index snapshot loaded before serving")
	servePtr  = flag.String("serve", "", "Serve HTTP on host:port")
)

func main() {
	flag.Parse()
	if err := run(os.Stdout); err != nil {
		log.Error().Err(err).Msg("rustem failed")
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg := rustem.DefaultConfig()
	if *configPtr != "" {
		loaded, err := rustem.LoadConfig(*configPtr)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	stemmer, err := rustem.New(cfg)
	if err != nil {
		return err
	}
	if *servePtr != "" {
		return serve(stemmer)
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	if *freqPtr {
		text, err := readInput(flag.Args())
		if err != nil {
			return err
		}
		frequencies, err := stemmer.TopFrequencies(text, *topPtr)
		if err != nil {
			return err
		}
		for _, f := range frequencies {
			fmt.Fprintf(w, "%s\t%d\n", f.Stem, f.Count)
		}
		return nil
	}

	if *filePtr == "" && flag.NArg() > 0 {
		for _, word := range flag.Args() {
			fmt.Fprintln(w, stemmer.Stem(word))
		}
		return nil
	}
	return eachLine(func(line string) error {
		stemmed, err := stemmer.StemText(line)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, stemmed)
		return err
	})
}

func serve(stemmer *rustem.Stemmer) error {
	index := rustem.NewIndex(stemmer)
	if *indexPtr != "" {
		f, err := os.Open(*indexPtr)
		if err != nil {
			return err
		}
		err = index.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("loading %s: %w", *indexPtr, err)
		}
		log.Info().Str("file", *indexPtr).Int("documents", index.Len()).Msg("Index loaded")
	}
	web.StartServer(*servePtr, stemmer, index)
	return nil
}

func eachLine(callback lib.ProcessCallback[string]) error {
	if *filePtr != "" {
		return lib.StreamLines(*filePtr, callback)
	}
	return lib.ReadLines(os.Stdin, callback)
}

func readInput(args []string) (string, error) {
	if *filePtr == "" && len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var sb strings.Builder
	err := eachLine(func(line string) error {
		sb.WriteString(line)
		sb.WriteByte('\n')
		return nil
	})
	return sb.String(), err
}
