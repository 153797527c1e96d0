package crack

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"unicode"

	"github.com/scytale-dev/scytale/internal/enigma"
	"github.com/scytale-dev/scytale/internal/textstat"
)

// Search stage names reported through Progress.
const (
	StageRotors = "rotors"
	StageRings  = "rings"
)

// Progress reports one completed slice of an Enigma settings search.
type Progress struct {
	Stage     string
	Completed int
	Total     int
	Best      EnigmaSetting
}

// ProgressFunc receives progress events. Events arrive from the search
// goroutine in completion order; handlers should return quickly since
// the search does not buffer past them.
type ProgressFunc func(Progress)

// EnigmaSetting is one candidate machine configuration together with
// its fitness: the distance between the decryption's index of
// coincidence and the English reference. Lower is better.
type EnigmaSetting struct {
	Rotors    [3]int
	Positions [3]int
	Rings     [3]int
	Fitness   float64
	Plaintext string
}

// EnigmaCracker recovers Enigma rotor choices, rotor positions, and
// ring settings from ciphertext, assuming the reflector and plugboard
// are known. Trials are pure and read-only over the configuration, so
// the search fans out across a worker pool.
type EnigmaCracker struct {
	reflector string
	plugboard string
	inventory []int
	workers   int
	progress  ProgressFunc
}

// EnigmaOption configures an EnigmaCracker.
type EnigmaOption func(*EnigmaCracker)

// WithReflector sets the reflector assumed during the search.
func WithReflector(name string) EnigmaOption {
	return func(c *EnigmaCracker) { c.reflector = name }
}

// WithPlugboard sets the plugboard pairs assumed during the search.
func WithPlugboard(pairs string) EnigmaOption {
	return func(c *EnigmaCracker) { c.plugboard = pairs }
}

// WithRotorInventory restricts the search to the given rotor numbers.
// The default inventory is all eight rotors.
func WithRotorInventory(rotors ...int) EnigmaOption {
	return func(c *EnigmaCracker) {
		if len(rotors) > 0 {
			c.inventory = append([]int(nil), rotors...)
		}
	}
}

// WithWorkers overrides the worker pool size.
func WithWorkers(n int) EnigmaOption {
	return func(c *EnigmaCracker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress subscribes fn to search progress events.
func WithProgress(fn ProgressFunc) EnigmaOption {
	return func(c *EnigmaCracker) { c.progress = fn }
}

// NewEnigmaCracker builds a cracker that assumes reflector B and an
// empty plugboard unless options say otherwise.
func NewEnigmaCracker(opts ...EnigmaOption) *EnigmaCracker {
	c := &EnigmaCracker{
		reflector: "B",
		inventory: []int{1, 2, 3, 4, 5, 6, 7, 8},
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CrackEnigma searches for the machine settings that decrypt ciphertext
// into the most natural-looking text. Stage one sweeps every rotor
// triple in the inventory against every position triple with ring
// settings held at 1; stage two holds the stage-one winners and sweeps
// ring settings. The stages are greedy rather than a joint search: ring
// settings are assumed near-independent of the rotor and position
// choice, which cuts the space by a factor of 26 cubed.
func (c *EnigmaCracker) CrackEnigma(ctx context.Context, ciphertext string) (*EnigmaSetting, error) {
	if countLetters(ciphertext) < 2 {
		return nil, fmt.Errorf("ciphertext has fewer than two letters to analyze")
	}

	// Surface reflector, plugboard, and inventory mistakes before
	// committing to millions of trials. The search loops build their
	// machines unchecked, so this probe is the only validation.
	for _, n := range c.inventory {
		if _, err := enigma.RotorFromNumber(n); err != nil {
			return nil, err
		}
	}
	probe := c.inventory[0]
	if _, err := c.machineFor([3]int{probe, probe, probe}, [3]int{1, 1, 1}); err != nil {
		return nil, err
	}

	best, err := c.searchRotors(ctx, ciphertext)
	if err != nil {
		return nil, err
	}
	best, err = c.searchRings(ctx, ciphertext, best)
	if err != nil {
		return nil, err
	}

	m, err := c.machineFor(best.Rotors, best.Rings)
	if err != nil {
		return nil, err
	}
	best.Plaintext, err = m.DecryptAt(ciphertext, best.Positions[0], best.Positions[1], best.Positions[2])
	if err != nil {
		return nil, err
	}
	return &best, nil
}

// searchRotors is stage one: one job per rotor triple, each sweeping
// the full position space on a machine built once for that triple.
func (c *EnigmaCracker) searchRotors(ctx context.Context, ciphertext string) (EnigmaSetting, error) {
	triples := rotorTriples(c.inventory)

	run := func(ctx context.Context, jobs <-chan int, results chan<- EnigmaSetting, fail func(error)) {
		for i := range jobs {
			res, err := c.bestPositions(ctx, ciphertext, triples[i])
			if err != nil {
				fail(err)
				return
			}
			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
	return c.collect(ctx, StageRotors, len(triples), run)
}

// searchRings is stage two: the rotor choice and positions stay fixed
// while ring settings sweep, one job per left-ring value.
func (c *EnigmaCracker) searchRings(ctx context.Context, ciphertext string, found EnigmaSetting) (EnigmaSetting, error) {
	run := func(ctx context.Context, jobs <-chan int, results chan<- EnigmaSetting, fail func(error)) {
		for i := range jobs {
			res, err := c.bestRingsAt(ctx, ciphertext, found, i+1)
			if err != nil {
				fail(err)
				return
			}
			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
	return c.collect(ctx, StageRings, 26, run)
}

// collect drives a worker pool over total jobs numbered 0..total-1 and
// reduces the results to the fittest setting, reporting progress as
// slices complete.
func (c *EnigmaCracker) collect(ctx context.Context, stage string, total int, run func(context.Context, <-chan int, chan<- EnigmaSetting, func(error))) (EnigmaSetting, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan EnigmaSetting, total)

	var once sync.Once
	var searchErr error
	fail := func(err error) {
		once.Do(func() {
			searchErr = err
			cancel()
		})
	}

	workers := c.workers
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			run(ctx, jobs, results, fail)
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < total; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	best := EnigmaSetting{Fitness: math.Inf(1)}
	completed := 0
	for res := range results {
		if res.Fitness < best.Fitness {
			best = res
		}
		completed++
		if c.progress != nil {
			c.progress(Progress{Stage: stage, Completed: completed, Total: total, Best: best})
		}
	}

	if searchErr != nil {
		return EnigmaSetting{}, searchErr
	}
	if err := ctx.Err(); err != nil {
		return EnigmaSetting{}, err
	}
	return best, nil
}

// bestPositions sweeps every position triple for one rotor choice and
// keeps the fittest. The machine is built once and DecryptAt replays it
// from each candidate position.
func (c *EnigmaCracker) bestPositions(ctx context.Context, ciphertext string, rotors [3]int) (EnigmaSetting, error) {
	m := c.uncheckedMachineFor(rotors, [3]int{1, 1, 1})

	target := textstat.English.IndexOfCoincidence()
	best := EnigmaSetting{Fitness: math.Inf(1)}
	for p1 := 1; p1 <= 26; p1++ {
		if err := ctx.Err(); err != nil {
			return EnigmaSetting{}, err
		}
		for p2 := 1; p2 <= 26; p2++ {
			for p3 := 1; p3 <= 26; p3++ {
				plain, err := m.DecryptAt(ciphertext, p1, p2, p3)
				if err != nil {
					return EnigmaSetting{}, err
				}
				fitness := math.Abs(textstat.IndexOfCoincidence(plain) - target)
				if fitness < best.Fitness {
					best = EnigmaSetting{
						Rotors:    rotors,
						Positions: [3]int{p1, p2, p3},
						Rings:     [3]int{1, 1, 1},
						Fitness:   fitness,
					}
				}
			}
		}
	}
	return best, nil
}

// bestRingsAt sweeps the middle and right ring settings for one left
// ring value, keeping the rotor choice and positions from stage one.
func (c *EnigmaCracker) bestRingsAt(ctx context.Context, ciphertext string, found EnigmaSetting, s1 int) (EnigmaSetting, error) {
	target := textstat.English.IndexOfCoincidence()
	best := EnigmaSetting{Fitness: math.Inf(1)}
	for s2 := 1; s2 <= 26; s2++ {
		if err := ctx.Err(); err != nil {
			return EnigmaSetting{}, err
		}
		for s3 := 1; s3 <= 26; s3++ {
			m := c.uncheckedMachineFor(found.Rotors, [3]int{s1, s2, s3})
			plain, err := m.DecryptAt(ciphertext, found.Positions[0], found.Positions[1], found.Positions[2])
			if err != nil {
				return EnigmaSetting{}, err
			}
			fitness := math.Abs(textstat.IndexOfCoincidence(plain) - target)
			if fitness < best.Fitness {
				best = EnigmaSetting{
					Rotors:    found.Rotors,
					Positions: found.Positions,
					Rings:     [3]int{s1, s2, s3},
					Fitness:   fitness,
				}
			}
		}
	}
	return best, nil
}

func (c *EnigmaCracker) machineFor(rotors, rings [3]int) (*enigma.Machine, error) {
	return enigma.NewMachine().
		Rotors(rotors[0], rotors[1], rotors[2]).
		Reflector(c.reflector).
		RingSettings(rings[0], rings[1], rings[2]).
		Plugboard(c.plugboard).
		Build()
}

// uncheckedMachineFor builds a machine without validation for the
// search loops. CrackEnigma's probe has already validated the
// reflector, plugboard, and rotor inventory, and the loop indices stay
// inside the legal ranges.
func (c *EnigmaCracker) uncheckedMachineFor(rotors, rings [3]int) *enigma.Machine {
	return enigma.Must(enigma.NewMachineUnchecked().
		Rotors(rotors[0], rotors[1], rotors[2]).
		Reflector(c.reflector).
		RingSettings(rings[0], rings[1], rings[2]).
		Plugboard(c.plugboard).
		Build())
}

func rotorTriples(inventory []int) [][3]int {
	triples := make([][3]int, 0, len(inventory)*len(inventory)*len(inventory))
	for _, r1 := range inventory {
		for _, r2 := range inventory {
			for _, r3 := range inventory {
				triples = append(triples, [3]int{r1, r2, r3})
			}
		}
	}
	return triples
}

func countLetters(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
