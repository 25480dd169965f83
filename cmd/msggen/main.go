package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/msggen/codegen"
	"github.com/wippyai/msggen/config"
	"github.com/wippyai/msggen/dynamic"
	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to msggen.toml (default: ./msggen.toml when present)")
		schemaFiles = flag.String("schema", "", "Schema documents, comma-separated (YAML or JSON)")
		witFile     = flag.String("wit", "", "WIT package JSON whose records become messages")
		pkg         = flag.String("package", "", "Package name of the generated file")
		output      = flag.String("o", "", "Output file (default: stdout)")
		noSetters   = flag.Bool("no-setters", false, "Generate getters only")
		layout      = flag.Bool("layout", false, "Print message layouts and exit")
		check       = flag.Bool("check", false, "Fail when the output file was generated from a different schema")
		decodeHex   = flag.String("decode", "", "Hex-encoded message buffer to decode")
		message     = flag.String("message", "", "Message name for -decode and -wasm")
		wasmFile    = flag.String("wasm", "", "WASM module whose memory holds a message to decode")
		addr        = flag.Uint("addr", 0, "Guest memory address of the message for -wasm")
		length      = flag.Uint("len", 0, "Message length in bytes for -wasm")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	logger := newLogger(*verbose, *interactive)
	defer logger.Sync()
	schema.SetLogger(logger.Named("schema"))
	codegen.SetLogger(logger.Named("codegen"))

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fail(logger, err)
	}
	if *schemaFiles != "" {
		cfg.Schemas = splitList(*schemaFiles)
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *noSetters {
		cfg.GenerateSetters = false
	}

	if len(cfg.Schemas) == 0 && *witFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: msggen -schema <file.yaml> [-package name] [-o out.go]")
		fmt.Fprintln(os.Stderr, "       msggen -schema <file.yaml> -layout")
		fmt.Fprintln(os.Stderr, "       msggen -schema <file.yaml> -decode <hex> [-message name]")
		fmt.Fprintln(os.Stderr, "       msggen -schema <file.yaml> -wasm <module.wasm> -addr <n> -len <n> [-message name]")
		fmt.Fprintln(os.Stderr, "       msggen -config msggen.toml -check")
		fmt.Fprintln(os.Stderr, "       msggen -schema <file.yaml> -i  (interactive mode)")
		_ = logger.Sync()
		os.Exit(1)
	}

	s, err := loadSchema(cfg.Schemas, *witFile)
	if err != nil {
		fail(logger, err)
	}

	switch {
	case *interactive:
		err = runInteractive(s, cfg)
	case *layout:
		err = printLayout(os.Stdout, s, term.IsTerminal(int(os.Stdout.Fd())))
	case *decodeHex != "":
		err = runDecode(os.Stdout, s, *message, *decodeHex)
	case *wasmFile != "":
		err = runDecodeGuest(context.Background(), os.Stdout, s, *message, *wasmFile, uint64(*addr), uint64(*length))
	case *check:
		err = runCheck(s, cfg)
	default:
		err = runGenerate(s, cfg)
	}
	if err != nil {
		fail(logger, err)
	}
}

// osExit is replaced in tests.
var osExit = os.Exit

// fail flushes the logger, reports err and ends the process. Deferred calls
// do not run past os.Exit.
func fail(logger *zap.Logger, err error) {
	_ = logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	osExit(1)
}

func newLogger(verbose, interactive bool) *zap.Logger {
	if interactive {
		return zap.NewNop()
	}
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// loadConfig reads the named file, or msggen.toml in the working directory
// when it exists.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultFile
	}
	return config.Load(path)
}

// loadSchema merges every schema document, plus the records of an optional
// WIT package, and builds the result.
func loadSchema(paths []string, witPath string) (*schema.Schema, error) {
	docs := make([]*schema.Document, 0, len(paths)+1)
	for _, p := range paths {
		doc, err := schema.Load(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		docs = append(docs, doc)
	}
	if witPath != "" {
		doc, err := schema.LoadWIT(witPath, schema.WITOptions{})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", witPath, err)
		}
		docs = append(docs, doc)
	}

	doc, err := schema.Merge(docs...)
	if err != nil {
		return nil, err
	}
	return schema.Build(doc)
}

func generator(cfg config.Config) *codegen.Generator {
	opts := []codegen.Option{
		codegen.WithPackage(cfg.Package),
		codegen.WithSetters(cfg.GenerateSetters),
	}
	if len(cfg.Schemas) > 0 {
		opts = append(opts, codegen.WithSource(strings.Join(cfg.Schemas, ", ")))
	}
	return codegen.New(opts...)
}

func generate(s *schema.Schema, cfg config.Config) ([]byte, error) {
	return generator(cfg).Generate(s)
}

func runGenerate(s *schema.Schema, cfg config.Config) error {
	src, err := generate(s, cfg)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// runCheck fails when the output file is missing, carries a fingerprint
// other than the schema's or was generated with other options.
func runCheck(s *schema.Schema, cfg config.Config) error {
	if cfg.Output == "" {
		return errors.New(errors.PhaseConfig, errors.KindFieldMissing).
			Path("output").
			Detail("-check needs an output file").
			Build()
	}
	src, err := os.ReadFile(cfg.Output)
	if err != nil {
		return fmt.Errorf("read output: %w", err)
	}
	got, ok := codegen.ReadFingerprint(src)
	if !ok {
		return fmt.Errorf("%s: no schema fingerprint, was it generated by msggen?", cfg.Output)
	}
	if want := s.Fingerprint(); got != want {
		return fmt.Errorf("%s is stale: fingerprint %016x, schema %016x", cfg.Output, got, want)
	}
	opts, ok := codegen.ReadOptions(src)
	if want := generator(cfg).Options(); !ok || opts != want {
		return fmt.Errorf("%s is stale: generated with options %q, configured %q", cfg.Output, opts, want)
	}
	return nil
}

func runDecode(w io.Writer, s *schema.Schema, name, hexBuf string) error {
	msg, err := pickMessage(s, name)
	if err != nil {
		return err
	}
	buf, err := parseHex(hexBuf)
	if err != nil {
		return err
	}
	rec, err := dynamic.Decode(msg, s, buf)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, rec.String())
	return err
}

func pickMessage(s *schema.Schema, name string) (*schema.Message, error) {
	if name == "" {
		if len(s.Messages) == 1 {
			return s.Messages[0], nil
		}
		return nil, fmt.Errorf("schema has %d messages, choose one with -message", len(s.Messages))
	}
	msg, ok := s.Message(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDecode, nil, "message", name)
	}
	return msg, nil
}

// parseHex accepts hex digits with optional 0x prefix, whitespace and ':'
// separators.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	var clean bytes.Buffer
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			continue
		}
		clean.WriteRune(r)
	}
	buf, err := hex.DecodeString(clean.String())
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return buf, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
