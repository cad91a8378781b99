// Package main provides the memplan CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("memplan: ")

	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("memplan %s\n", version)
	case "estimate":
		if err := estimate(os.Args[2:], os.Stdout); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			log.Fatal(err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "memplan %s - static layer memory estimates\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  estimate   Estimate the memory of one layer (see estimate -h)")
}

// estimateConfig holds the parsed estimate flags.
type estimateConfig struct {
	layer     layerConfig
	batch     int
	dtype     string
	mode      string
	cache     string
	optimizer string
	format    string
}

func estimate(args []string, w io.Writer) error {
	var cfg estimateConfig
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.StringVar(&cfg.layer.kind, "layer", "linear", "layer type: linear, conv2d, maxpool2d, embedding, layernorm, relu, sigmoid, tanh, silu")
	fs.StringVar(&cfg.layer.in, "in", "", "per-example input shape, e.g. 784 or 1,28,28")
	fs.IntVar(&cfg.layer.out, "out", 0, "output features, output channels or embedding dimension")
	fs.IntVar(&cfg.layer.kernel, "kernel", 3, "kernel size (conv2d, maxpool2d)")
	fs.IntVar(&cfg.layer.stride, "stride", 1, "stride (conv2d, maxpool2d)")
	fs.IntVar(&cfg.layer.padding, "padding", 0, "zero padding (conv2d)")
	fs.IntVar(&cfg.layer.vocab, "vocab", 0, "vocabulary size (embedding)")
	fs.StringVar(&cfg.layer.encoding, "encoding", "", "tiktoken encoding that sizes the vocabulary (embedding)")
	fs.StringVar(&cfg.layer.model, "model", "", "model whose tiktoken encoding sizes the vocabulary, e.g. gpt-4o (embedding)")
	fs.StringVar(&cfg.layer.prompt, "prompt", "", "sample text whose token count sets the sequence length (embedding)")
	fs.IntVar(&cfg.batch, "batch", 32, "minibatch size")
	fs.StringVar(&cfg.dtype, "dtype", "float32", "data type: "+dataTypeNames())
	fs.StringVar(&cfg.mode, "mode", "training", "inference or training")
	fs.StringVar(&cfg.cache, "cache", "none", "cache mode: none, host, device")
	fs.StringVar(&cfg.optimizer, "optimizer", "adam", "optimizer: sgd, momentum, adam, none")
	fs.StringVar(&cfg.format, "format", "text", "output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dt, err := tensor.ParseDataType(cfg.dtype)
	if err != nil {
		return err
	}
	mode, err := memory.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	cache, err := memory.ParseCacheMode(cfg.cache)
	if err != nil {
		return err
	}
	updater, err := optim.Parse(cfg.optimizer)
	if err != nil {
		return err
	}

	layer, in, err := cfg.layer.build()
	if err != nil {
		return err
	}
	report, err := layer.MemoryReport(cfg.layer.kind, in, updater)
	if err != nil {
		return err
	}
	summary, err := memory.Summarize(report, cfg.batch, mode, cache, dt)
	if err != nil {
		return err
	}
	return writeSummary(w, summary, cfg.format)
}

func writeSummary(w io.Writer, s *memory.Summary, format string) error {
	switch format {
	case "json":
		data, err := s.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := s.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "%s (%s)\tbatch=%d %s cache=%s %s\t\n", s.Name, s.Type, s.Minibatch, s.Mode, s.CacheMode, s.DataType)
		for _, c := range s.Categories {
			fmt.Fprintf(tw, "%s\t%d\t\n", c.Category, c.Bytes)
		}
		fmt.Fprintf(tw, "total\t%d\t\n", s.TotalBytes)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// dataTypeNames lists the accepted -dtype values.
func dataTypeNames() string {
	dts := tensor.DataTypes()
	names := make([]string, len(dts))
	for i, dt := range dts {
		names[i] = dt.String()
	}
	return strings.Join(names, ", ")
}
