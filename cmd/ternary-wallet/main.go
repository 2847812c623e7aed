package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/config"
	"ternary.dev/ledger/signing"
	"ternary.dev/ledger/store"
	"ternary.dev/ledger/validation"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	if m == nil {
		return ""
	}
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

const usage = "usage: ternary-wallet [flags] dry-run|address|keystore|sign|verify|spent [command flags]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ternary-wallet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default <datadir>/config.yaml)")
	dataDir := fs.String("datadir", config.DefaultDataDir(), "wallet data directory")
	logLevel := fs.String("log-level", "", "log level: debug|info|warn|error")
	logFormat := fs.String("log-format", "", "log format: text|json")
	security := fs.Int("security", 0, "default security level for new addresses and inputs")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *configPath
	if path == "" {
		path = config.ConfigPath(*dataDir)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "datadir":
			cfg.DataDir = *dataDir
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "security":
			cfg.Security = *security
		}
	})
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := config.ValidateConfig(cfg); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 2
	}
	logger := config.NewLogger(cfg, stderr)

	if fs.NArg() == 0 {
		_, _ = fmt.Fprintln(stderr, usage)
		return 2
	}
	rest := fs.Args()[1:]
	switch fs.Arg(0) {
	case "dry-run":
		if err := printConfig(stdout, cfg); err != nil {
			_, _ = fmt.Fprintf(stderr, "config encode failed: %v\n", err)
			return 1
		}
		return 0
	case "address":
		return runAddress(cfg, rest, stdout, stderr)
	case "keystore":
		return runKeystore(rest, stdout, stderr)
	case "sign":
		return runSign(cfg, logger, rest, stdout, stderr)
	case "verify":
		return runVerify(cfg, logger, rest, stdout, stderr)
	case "spent":
		return runSpent(cfg, rest, stdout, stderr)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n%s\n", fs.Arg(0), usage)
		return 2
	}
}

func printConfig(w io.Writer, cfg config.Config) error {
	if cfg.HMACKey != "" {
		cfg.HMACKey = "<redacted>"
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path.
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type seedSource struct {
	seedFile string
	keystore string
	kekFile  string
}

func (s *seedSource) register(fs *flag.FlagSet) {
	fs.StringVar(&s.seedFile, "seed-file", "", "file holding the seed trytes")
	fs.StringVar(&s.keystore, "keystore", "", "AES-KW sealed seed keystore (with -kek-file)")
	fs.StringVar(&s.kekFile, "kek-file", "", "hex AES-256 key encryption key for -keystore")
}

func (s *seedSource) set() bool {
	return s.seedFile != "" || (s.keystore != "" && s.kekFile != "")
}

func (s *seedSource) load() (string, error) {
	if s.seedFile != "" {
		return config.ReadSeedFile(s.seedFile)
	}
	kek, err := config.ReadKEKFile(s.kekFile)
	if err != nil {
		return "", err
	}
	ks, err := config.ReadKeystore(s.keystore)
	if err != nil {
		return "", err
	}
	return ks.Seed(kek)
}

func runKeystore(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keystore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seedFile := fs.String("seed-file", "", "file holding the seed trytes to seal")
	kekFile := fs.String("kek-file", "", "hex AES-256 key encryption key")
	out := fs.String("out", "", "output keystore json path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *seedFile == "" || *kekFile == "" || *out == "" {
		_, _ = fmt.Fprintln(stderr, "keystore: -seed-file, -kek-file and -out are required")
		return 2
	}
	seed, err := config.ReadSeedFile(*seedFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	kek, err := config.ReadKEKFile(*kekFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	ks, err := config.WrapSeed(seed, kek)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "keystore wrap failed: %v\n", err)
		return 1
	}
	if err := config.WriteKeystore(*out, ks); err != nil {
		_, _ = fmt.Fprintf(stderr, "keystore write failed: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, ks.KeyIDHex)
	return 0
}

func runAddress(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("address", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var src seedSource
	src.register(fs)
	index := fs.Uint64("index", 0, "first key index")
	count := fs.Int("count", 1, "number of addresses")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !src.set() || *count < 1 {
		_, _ = fmt.Fprintln(stderr, "address: -seed-file (or -keystore with -kek-file) and a positive -count are required")
		return 2
	}
	seed, err := src.load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	signer, err := signing.NewSigner(seed, nil, nil)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "signer init failed: %v\n", err)
		return 2
	}
	for i := uint64(0); i < uint64(*count); i++ {
		addr, err := signer.Address(*index+i, cfg.Security)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "address %d: %v\n", *index+i, err)
			return 1
		}
		_, _ = fmt.Fprintf(stdout, "%d %s\n", *index+i, addr)
	}
	return 0
}

func runSign(cfg config.Config, logger *slog.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var src seedSource
	src.register(fs)
	bundlePath := fs.String("bundle", "", "bundle JSON file")
	inputsPath := fs.String("inputs", "", "inputs JSON file")
	outPath := fs.String("out", "", "write the signed bundle here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !src.set() || *bundlePath == "" || *inputsPath == "" {
		_, _ = fmt.Fprintln(stderr, "sign: a seed source, -bundle and -inputs are required")
		return 2
	}
	seed, err := src.load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	var b bundle.Bundle
	if err := readJSONFile(*bundlePath, &b); err != nil {
		_, _ = fmt.Fprintf(stderr, "bundle load failed: %v\n", err)
		return 2
	}
	var inputs []signing.Input
	if err := readJSONFile(*inputsPath, &inputs); err != nil {
		_, _ = fmt.Fprintf(stderr, "inputs load failed: %v\n", err)
		return 2
	}
	for i := range inputs {
		if inputs[i].Security == 0 {
			inputs[i].Security = cfg.Security
		}
	}

	if len(b) > 0 && b[0].Bundle == "" {
		if err := b.Finalize(nil); err != nil {
			_, _ = fmt.Fprintf(stderr, "finalize failed: %v\n", err)
			return 1
		}
		logger.Debug("bundle finalized", "bundle", b[0].Bundle, "transactions", len(b))
	}
	if cfg.HMACKey != "" {
		h, err := signing.NewHMAC(cfg.HMACKey)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "hmac init failed: %v\n", err)
			return 2
		}
		if err := h.AddHMAC(b); err != nil {
			_, _ = fmt.Fprintf(stderr, "hmac failed: %v\n", err)
			return 1
		}
	}

	db, err := store.Open(cfg.DataDir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "spent store open failed: %v\n", err)
		return 2
	}
	defer func() { _ = db.Close() }()

	signer, err := signing.NewSigner(seed, db, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "signer init failed: %v\n", err)
		return 2
	}
	if err := signer.Sign(b, inputs); err != nil {
		_, _ = fmt.Fprintf(stderr, "sign failed: %v\n", err)
		return 1
	}

	w := stdout
	if *outPath != "" {
		f, err := os.OpenFile(*outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) // #nosec G304 -- operator-supplied path.
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "open output failed: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	if err := writeJSON(w, b); err != nil {
		_, _ = fmt.Fprintf(stderr, "bundle encode failed: %v\n", err)
		return 1
	}
	return 0
}

func runVerify(cfg config.Config, logger *slog.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var paths multiStringFlag
	fs.Var(&paths, "bundle", "bundle JSON file (repeatable)")
	signatures := fs.Bool("signatures", cfg.VerifySignatures, "also verify input signatures")
	workers := fs.Int("workers", 4, "max parallel validations")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(stderr, "verify: at least one -bundle is required")
		return 2
	}
	bundles := make([]bundle.Bundle, len(paths))
	for i, p := range paths {
		if err := readJSONFile(p, &bundles[i]); err != nil {
			_, _ = fmt.Fprintf(stderr, "bundle load failed: %v\n", err)
			return 2
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	results, err := validation.ValidateMany(ctx, bundles, validation.Options{VerifySignatures: *signatures}, *workers)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "verify failed: %v\n", err)
		return 1
	}
	code := 0
	for i, ok := range results {
		_, _ = fmt.Fprintf(stdout, "%s valid=%v\n", paths[i], ok)
		if !ok {
			logger.Warn("bundle rejected", "path", paths[i], "signatures", *signatures)
			code = 1
		}
	}
	return code
}

func runSpent(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	address := fs.String("address", "", "show one address (81 or 90 trytes)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	db, err := store.Open(cfg.DataDir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "spent store open failed: %v\n", err)
		return 2
	}
	defer func() { _ = db.Close() }()

	if *address == "" {
		recs, err := db.List()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "spent list failed: %v\n", err)
			return 1
		}
		if recs == nil {
			recs = []store.SpentRecord{}
		}
		if err := writeJSON(stdout, recs); err != nil {
			_, _ = fmt.Fprintf(stderr, "encode failed: %v\n", err)
			return 1
		}
		return 0
	}

	addr, err := signing.RemoveChecksum(*address)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	rec, ok, err := db.Get(addr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "spent lookup failed: %v\n", err)
		return 1
	}
	if !ok {
		_, _ = fmt.Fprintf(stdout, "%s spent=false\n", addr)
		return 0
	}
	if err := writeJSON(stdout, rec); err != nil {
		_, _ = fmt.Fprintf(stderr, "encode failed: %v\n", err)
		return 1
	}
	return 0
}
