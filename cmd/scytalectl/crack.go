package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/scytale-dev/scytale/internal/config"
	"github.com/scytale-dev/scytale/internal/crack"
	"github.com/scytale-dev/scytale/internal/logging"
	"github.com/scytale-dev/scytale/internal/report"
)

// crackSession bundles the pieces every crack subcommand needs: the
// resolved configuration, a candidate writer, an audit logger, and the
// session identifier tying report lines and audit events together.
type crackSession struct {
	cfg     config.Config
	writer  *report.Writer
	audit   *logging.AuditLogger
	session string
}

func newCrackSession(outPath string) (*crackSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if outPath == "" && cfg.OutputDir != "" {
		outPath = filepath.Join(cfg.OutputDir, "candidates.jsonl")
	}
	writer := report.NewWriter(outPath)

	audit, err := logging.NewAuditLogger("crack",
		logging.WithFile(filepath.Join(filepath.Dir(writer.Path()), "audit.jsonl")),
		logging.WithoutStdout(),
	)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	return &crackSession{
		cfg:     cfg,
		writer:  writer,
		audit:   audit,
		session: report.NewSession(),
	}, nil
}

func (s *crackSession) close() {
	s.writer.Close()
	s.audit.Close()
}

func (s *crackSession) emit(event logging.EventType, outcome logging.Outcome, reason string, metadata map[string]any) {
	evt := logging.AuditEvent{
		Session:   s.session,
		EventType: event,
		Outcome:   outcome,
		Reason:    reason,
		Metadata:  metadata,
	}
	if err := s.audit.Emit(evt); err != nil {
		fmt.Fprintf(os.Stderr, "audit: %v\n", err)
	}
}

// record writes the candidate and logs the write, reporting but not
// failing on audit errors.
func (s *crackSession) record(candidate report.Candidate) error {
	if err := s.writer.Write(candidate); err != nil {
		return err
	}
	s.emit(logging.EventReportWrite, logging.OutcomeSuccess, "", map[string]any{
		"candidate_id": candidate.ID,
		"family":       candidate.Family,
		"score":        candidate.Score,
	})
	return nil
}

func crackContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runCrackGronsfeld(args []string) int {
	fs := flag.NewFlagSet("crack gronsfeld", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the ciphertext")
	digits := fs.String("digits", "", "known key digits to permute, such as 314")
	alphabetSpec := fs.String("alphabet", "", "cipher alphabet override")
	maxDigits := fs.Int("max-digits", 0, "unknown-key search depth override")
	accept := fs.Float64("accept", 0, "plaintext score that stops the unknown-key search")
	out := fs.String("out", "", "path for the candidates JSONL report")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack gronsfeld: %v\n", err)
		return 1
	}

	session, err := newCrackSession(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack gronsfeld: %v\n", err)
		return 1
	}
	defer session.close()

	opts := []crack.GronsfeldOption{}
	if *alphabetSpec != "" {
		opts = append(opts, crack.WithAlphabet(*alphabetSpec))
	}
	if *maxDigits > 0 {
		opts = append(opts, crack.WithMaxKeyDigits(*maxDigits))
	} else if session.cfg.MaxKeyDigits > 0 {
		opts = append(opts, crack.WithMaxKeyDigits(session.cfg.MaxKeyDigits))
	}
	if *accept > 0 {
		opts = append(opts, crack.WithAcceptScore(*accept))
	} else if session.cfg.AcceptScore > 0 {
		opts = append(opts, crack.WithAcceptScore(session.cfg.AcceptScore))
	}
	cracker := crack.NewGronsfeldCracker(opts...)

	session.emit(logging.EventCrackStart, logging.OutcomeInfo, "", map[string]any{
		"family":           "gronsfeld",
		"ciphertext_chars": len(text),
		"known_digits":     len(*digits),
	})

	ctx, cancel := crackContext()
	defer cancel()

	var key *crack.GronsfeldKey
	if *digits != "" {
		key, err = cracker.CrackWithDigits(ctx, text, *digits)
	} else {
		key, err = cracker.Crack(ctx, text)
	}
	if err != nil {
		session.emit(logging.EventCrackResult, logging.OutcomeFailure, err.Error(), map[string]any{
			"family": "gronsfeld",
		})
		if errors.Is(err, crack.ErrSearchExhausted) {
			fmt.Fprintf(os.Stderr, "no key found: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "crack gronsfeld: %v\n", err)
		return 1
	}

	candidate := report.NewCandidate(session.session, "gronsfeld", key.Key, key.Plaintext)
	if err := session.record(candidate); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		return 1
	}
	session.emit(logging.EventCrackResult, logging.OutcomeSuccess, "", map[string]any{
		"family":     "gronsfeld",
		"key_digits": len(key.Key),
		"score":      key.Score,
	})

	fmt.Printf("key: %s\n", key.Key)
	fmt.Printf("score: %.4f\n", key.Score)
	fmt.Println(key.Plaintext)
	return 0
}

func runCrackEnigma(args []string) int {
	fs := flag.NewFlagSet("crack enigma", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the ciphertext")
	reflector := fs.String("reflector", "B", "reflector assumed during the search")
	plugboard := fs.String("plugboard", "", "plugboard pairs assumed during the search")
	workers := fs.Int("workers", 0, "worker pool size override")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	out := fs.String("out", "", "path for the candidates JSONL report")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack enigma: %v\n", err)
		return 1
	}

	session, err := newCrackSession(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack enigma: %v\n", err)
		return 1
	}
	defer session.close()

	opts := []crack.EnigmaOption{
		crack.WithReflector(*reflector),
		crack.WithPlugboard(*plugboard),
	}
	if *workers > 0 {
		opts = append(opts, crack.WithWorkers(*workers))
	} else if session.cfg.Workers > 0 {
		opts = append(opts, crack.WithWorkers(session.cfg.Workers))
	}
	if !*quiet {
		opts = append(opts, crack.WithProgress(func(p crack.Progress) {
			fmt.Fprintf(os.Stderr, "\r%s: %d/%d", p.Stage, p.Completed, p.Total)
			if p.Completed == p.Total {
				fmt.Fprintln(os.Stderr)
			}
		}))
	}
	cracker := crack.NewEnigmaCracker(opts...)

	session.emit(logging.EventCrackStart, logging.OutcomeInfo, "", map[string]any{
		"family":           "enigma",
		"ciphertext_chars": len(text),
	})

	ctx, cancel := crackContext()
	defer cancel()

	setting, err := cracker.CrackEnigma(ctx, text)
	if err != nil {
		session.emit(logging.EventCrackResult, logging.OutcomeFailure, err.Error(), map[string]any{
			"family": "enigma",
		})
		fmt.Fprintf(os.Stderr, "crack enigma: %v\n", err)
		return 1
	}

	key := fmt.Sprintf("rotors %v positions %v rings %v", setting.Rotors, setting.Positions, setting.Rings)
	candidate := report.NewCandidate(session.session, "enigma", key, setting.Plaintext)
	if err := session.record(candidate); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		return 1
	}
	session.emit(logging.EventCrackResult, logging.OutcomeSuccess, "", map[string]any{
		"family":  "enigma",
		"fitness": setting.Fitness,
	})

	fmt.Printf("rotors: %d %d %d\n", setting.Rotors[0], setting.Rotors[1], setting.Rotors[2])
	fmt.Printf("positions: %d %d %d\n", setting.Positions[0], setting.Positions[1], setting.Positions[2])
	fmt.Printf("rings: %d %d %d\n", setting.Rings[0], setting.Rings[1], setting.Rings[2])
	fmt.Println(setting.Plaintext)
	return 0
}

func runCrackUnwrap(args []string) int {
	fs := flag.NewFlagSet("crack unwrap", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	input := fs.String("input", "", "path to a file holding the layered ciphertext")
	maxLayers := fs.Int("max-layers", 0, "layer depth override")
	target := fs.Float64("target", 0, "plaintext score that stops unwrapping")
	out := fs.String("out", "", "path for the candidates JSONL report")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	text, err := readText(fs.Args(), *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack unwrap: %v\n", err)
		return 1
	}

	session, err := newCrackSession(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crack unwrap: %v\n", err)
		return 1
	}
	defer session.close()

	opts := []crack.UnwrapOption{}
	if *maxLayers > 0 {
		opts = append(opts, crack.WithMaxLayers(*maxLayers))
	} else if session.cfg.MaxLayers > 0 {
		opts = append(opts, crack.WithMaxLayers(session.cfg.MaxLayers))
	}
	if *target > 0 {
		opts = append(opts, crack.WithTargetScore(*target))
	} else if session.cfg.TargetScore > 0 {
		opts = append(opts, crack.WithTargetScore(session.cfg.TargetScore))
	}
	if session.cfg.AcceptScore > 0 || session.cfg.MaxKeyDigits > 0 {
		gopts := []crack.GronsfeldOption{}
		if session.cfg.MaxKeyDigits > 0 {
			gopts = append(gopts, crack.WithMaxKeyDigits(session.cfg.MaxKeyDigits))
		}
		if session.cfg.AcceptScore > 0 {
			gopts = append(gopts, crack.WithAcceptScore(session.cfg.AcceptScore))
		}
		opts = append(opts, crack.WithGronsfeldCracker(crack.NewGronsfeldCracker(gopts...)))
	}
	unwrapper := crack.NewUnwrapper(opts...)

	session.emit(logging.EventCrackStart, logging.OutcomeInfo, "", map[string]any{
		"family":           "layered",
		"ciphertext_chars": len(text),
	})

	ctx, cancel := crackContext()
	defer cancel()

	result, err := unwrapper.Unwrap(ctx, text)
	if err != nil {
		session.emit(logging.EventCrackResult, logging.OutcomeFailure, err.Error(), map[string]any{
			"family": "layered",
		})
		fmt.Fprintf(os.Stderr, "crack unwrap: %v\n", err)
		return 1
	}

	for i, layer := range result.Layers {
		session.emit(logging.EventLayerPeeled, logging.OutcomeInfo, "", map[string]any{
			"layer":  i + 1,
			"cipher": string(layer.Cipher),
			"score":  layer.Score,
		})
	}

	family := "layered"
	if n := len(result.Layers); n > 0 {
		family = string(result.Layers[n-1].Cipher)
	}
	candidate := report.NewCandidate(session.session, family, "", result.Plaintext)
	if err := session.record(candidate); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		return 1
	}
	session.emit(logging.EventCrackResult, logging.OutcomeSuccess, "", map[string]any{
		"family": "layered",
		"layers": len(result.Layers),
		"score":  result.Score,
	})

	for i, layer := range result.Layers {
		fmt.Fprintf(os.Stderr, "layer %d: %s (score %.4f)\n", i+1, layer.Cipher, layer.Score)
	}
	fmt.Println(result.Plaintext)
	return 0
}
