package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/bitops"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// Hammers bignum.Int with random operands across a pool of workers and
// compares every result against math/big. The fuzz tests in the root package
// do the same thing at a much smaller scale; this is for leaving running
// overnight on a new architecture or after touching the division kernel.

const usage = `Cross-check bignum.Int against math/big

Usage: crosscheck [options]
`

var errMismatch = errors.New("crosscheck: mismatch")

type config struct {
	iterations int
	workers    int
	seed       int64
	limbs      int
	ops        []string
	json       bool
	dump       bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config

	fs := pflag.NewFlagSet("crosscheck", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	fs.IntVarP(&cfg.iterations, "iterations", "n", 100000, "Iterations per worker per op")
	fs.IntVarP(&cfg.workers, "workers", "w", 4, "Number of worker goroutines")
	fs.Int64Var(&cfg.seed, "seed", 0, "Base RNG seed (0 == current nanotime); worker i uses seed+i")
	fs.IntVar(&cfg.limbs, "limbs", 8, "Maximum number of 64-bit limbs per operand")
	fs.StringSliceVar(&cfg.ops, "ops", nil, "Ops to check (default all): "+strings.Join(opNames(), ","))
	fs.BoolVar(&cfg.json, "json", false, "Log JSON instead of console output")
	fs.BoolVar(&cfg.dump, "dump", false, "Dump operand limbs on mismatch")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	var log zerolog.Logger
	if cfg.json {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.limbs < 1 {
		cfg.limbs = 1
	}
	if len(cfg.ops) == 0 {
		cfg.ops = opNames()
	}
	for _, op := range cfg.ops {
		if _, ok := checks[op]; !ok {
			return fmt.Errorf("crosscheck: unknown op %q", op)
		}
	}

	log.Info().
		Int64("seed", cfg.seed).
		Strs("ops", cfg.ops).
		Int("iterations", cfg.iterations).
		Int("workers", cfg.workers).
		Int("limbs", cfg.limbs).
		Str("impl", bitops.Implementation()).
		Stringer("cpu", bitops.CPU()).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var checked atomic.Int64
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.workers; w++ {
		w := w
		g.Go(func() error {
			c := &checker{
				rng:   rand.New(rand.NewSource(cfg.seed + int64(w))),
				limbs: cfg.limbs,
				log:   log.With().Int("worker", w).Logger(),
				dump:  cfg.dump,
			}
			for i := 0; i < cfg.iterations; i++ {
				if i%1024 == 0 && ctx.Err() != nil {
					return nil
				}
				for _, op := range cfg.ops {
					if err := c.check(op); err != nil {
						return err
					}
				}
				checked.Add(int64(len(cfg.ops)))
			}
			return nil
		})
	}

	err := g.Wait()
	log.Info().
		Int64("checked", checked.Load()).
		Dur("elapsed", time.Since(start)).
		Bool("ok", err == nil).
		Msg("done")
	return err
}

type checker struct {
	rng   *rand.Rand
	limbs int
	log   zerolog.Logger
	dump  bool
}

// operand returns a random signed Int, biased towards values with limbs of
// all zeros or all ones, which are the interesting cases for carry and
// qhat correction.
func (c *checker) operand() bignum.Int {
	n := c.rng.Intn(c.limbs + 1)
	limbs := make([]uint64, n)
	for i := range limbs {
		switch c.rng.Intn(10) {
		case 0:
			limbs[i] = 0
		case 1:
			limbs[i] = ^uint64(0)
		default:
			limbs[i] = c.rng.Uint64()
		}
	}
	return bignum.IntFromLimbs(c.rng.Intn(2) == 1, limbs)
}

func (c *checker) check(op string) error {
	a, b := c.operand(), c.operand()
	exp, got, ok := checks[op](c, a, b)
	if ok {
		return nil
	}

	ev := c.log.Error().
		Str("op", op).
		Str("a", a.String()).
		Str("b", b.String()).
		Str("expected", exp).
		Str("actual", got)
	if c.dump {
		ev = ev.Str("limbs", spew.Sdump(a.Limbs(), b.Limbs()))
	}
	ev.Msg("mismatch")
	return fmt.Errorf("%w: op %s", errMismatch, op)
}

type checkFunc func(c *checker, a, b bignum.Int) (exp, got string, ok bool)

func compare(exp *big.Int, got bignum.Int) (string, string, bool) {
	es, gs := exp.String(), got.String()
	return es, gs, es == gs
}

var checks = map[string]checkFunc{
	"add": func(c *checker, a, b bignum.Int) (string, string, bool) {
		return compare(new(big.Int).Add(a.AsBigInt(), b.AsBigInt()), a.Add(b))
	},
	"sub": func(c *checker, a, b bignum.Int) (string, string, bool) {
		return compare(new(big.Int).Sub(a.AsBigInt(), b.AsBigInt()), a.Sub(b))
	},
	"mul": func(c *checker, a, b bignum.Int) (string, string, bool) {
		return compare(new(big.Int).Mul(a.AsBigInt(), b.AsBigInt()), a.Mul(b))
	},
	"quorem": func(c *checker, a, b bignum.Int) (string, string, bool) {
		if b.IsZero() {
			return "", "", true
		}
		eq, er := new(big.Int).QuoRem(a.AsBigInt(), b.AsBigInt(), new(big.Int))
		q, r := a.QuoRem(b)
		if es, gs, ok := compare(eq, q); !ok {
			return es, gs, ok
		}
		return compare(er, r)
	},
	"divmod": func(c *checker, a, b bignum.Int) (string, string, bool) {
		if b.IsZero() {
			return "", "", true
		}
		ba, bb := a.AsBigInt(), b.AsBigInt()

		// big.Int.DivMod is Euclidean; floored only differs when b < 0.
		eq, em := new(big.Int).DivMod(ba, bb, new(big.Int))
		if bb.Sign() < 0 && em.Sign() != 0 {
			eq.Sub(eq, big.NewInt(1))
			em.Add(em, bb)
		}
		q, m := a.DivMod(b)
		if es, gs, ok := compare(eq, q); !ok {
			return es, gs, ok
		}
		return compare(em, m)
	},
	"cmp": func(c *checker, a, b bignum.Int) (string, string, bool) {
		exp, got := a.AsBigInt().Cmp(b.AsBigInt()), a.Cmp(b)
		return fmt.Sprint(exp), fmt.Sprint(got), exp == got
	},
	"sqrt": func(c *checker, a, b bignum.Int) (string, string, bool) {
		a = a.Abs()
		return compare(new(big.Int).Sqrt(a.AsBigInt()), a.Sqrt())
	},
	"pow": func(c *checker, a, b bignum.Int) (string, string, bool) {
		e := uint64(c.rng.Intn(16))
		return compare(new(big.Int).Exp(a.AsBigInt(), new(big.Int).SetUint64(e), nil), a.Pow(e))
	},
	"lsh": func(c *checker, a, b bignum.Int) (string, string, bool) {
		n := uint(c.rng.Intn(c.limbs * 64))
		return compare(new(big.Int).Lsh(a.Abs().AsBigInt(), n), a.Abs().Lsh(n))
	},
	"rsh": func(c *checker, a, b bignum.Int) (string, string, bool) {
		n := uint(c.rng.Intn(c.limbs * 64))
		return compare(new(big.Int).Rsh(a.Abs().AsBigInt(), n), a.Abs().Rsh(n))
	},
	"text": func(c *checker, a, b bignum.Int) (string, string, bool) {
		base := c.rng.Intn(bignum.MaxBase-1) + 2
		s := a.Text(base)
		back, err := bignum.IntFromString(s, base)
		if err != nil {
			return a.String(), err.Error(), false
		}
		if base <= 36 {
			if exp := a.AsBigInt().Text(base); exp != s {
				return exp, s, false
			}
		}
		return a.String(), back.String(), back.Equal(a)
	},
	"asfloat64": func(c *checker, a, b bignum.Int) (string, string, bool) {
		exp, _ := new(big.Float).SetInt(a.AsBigInt()).Float64()
		got := a.AsFloat64()
		return fmt.Sprint(exp), fmt.Sprint(got), exp == got
	},
}

func opNames() []string {
	out := make([]string, 0, len(checks))
	for k := range checks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
