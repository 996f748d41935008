package kmst

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// pipeline stages, strictly sequential per instance.
type stage int

const (
	stageLoaded stage = iota
	stageVariables
	stageConstraints
	stageObjective
	stageSolved
)

// Pipeline drives one instance through its formulation on one fresh model:
// variables, constraints, objective, solve, validate. Steps called out of
// order fail with ErrPipelineOrder instead of building a broken model.
type Pipeline struct {
	m      Model
	b      Builder
	inst   *Instance
	stage  stage
	status Status
}

// NewPipeline pairs a fresh model with a fresh builder for one instance.
func NewPipeline(m Model, f Formulation, inst *Instance) (*Pipeline, error) {
	b, err := f.NewBuilder()
	if err != nil {
		return nil, err
	}
	return &Pipeline{m: m, b: b, inst: inst}, nil
}

func (p *Pipeline) step(want stage) error {
	if p.stage != want {
		return fmt.Errorf("%w: at stage %d, want %d", ErrPipelineOrder, p.stage, want)
	}
	return nil
}

func (p *Pipeline) DefineVariables() error {
	if err := p.step(stageLoaded); err != nil {
		return err
	}
	if err := p.b.DefineVariables(p.m, p.inst); err != nil {
		return err
	}
	p.stage = stageVariables
	return nil
}

func (p *Pipeline) DefineConstraints() error {
	if err := p.step(stageVariables); err != nil {
		return err
	}
	if err := p.b.DefineConstraints(p.m, p.inst); err != nil {
		return err
	}
	p.stage = stageConstraints
	return nil
}

func (p *Pipeline) DefineObjective() error {
	if err := p.step(stageConstraints); err != nil {
		return err
	}
	if err := p.b.DefineObjective(p.m, p.inst); err != nil {
		return err
	}
	p.stage = stageObjective
	return nil
}

func (p *Pipeline) Solve() (Status, error) {
	if err := p.step(stageObjective); err != nil {
		return StatusUnknown, err
	}
	status, err := p.m.Optimize()
	if err != nil {
		return StatusUnknown, err
	}
	p.status = status
	p.stage = stageSolved
	return status, nil
}

// Validate is reachable only after an optimal solve.
func (p *Pipeline) Validate() (*Validation, error) {
	if err := p.step(stageSolved); err != nil {
		return nil, err
	}
	if p.status != StatusOptimal {
		return nil, fmt.Errorf("%w: status %s", ErrNotSolved, p.status)
	}
	return ValidateSolution(p.m, p.b, p.inst)
}

// Runner executes the configured batch: every named graph expands into its
// two k-variants, each solved on its own model. A failing instance is
// reported and skipped; it never aborts the batch.
type Runner struct {
	Formulation Formulation
	Factory     ModelFactory
	DataPath    string
	Instances   []string
}

// NewRunner validates the configuration up front; unknown formulation or
// solver names are fatal here, before any instance is touched.
func NewRunner(cfg *Config) (*Runner, error) {
	f, err := ParseFormulation(cfg.Formulation)
	if err != nil {
		return nil, err
	}
	factory, err := Backend(cfg.Solver, cfg.TimeLimit)
	if err != nil {
		return nil, err
	}
	return &Runner{
		Formulation: f,
		Factory:     factory,
		DataPath:    cfg.DataPath,
		Instances:   cfg.Instances,
	}, nil
}

// Run processes all configured instances in order and returns one result
// per k-variant (or one failure entry per unloadable graph).
func (r *Runner) Run() []Result {
	var results []Result
	for _, name := range r.Instances {
		variants, err := LoadVariants(r.DataPath, name)
		if err != nil {
			log.Printf("Skipping instance %s: %s", name, err)
			results = append(results, Result{Instance: name, Comment: err.Error()})
			continue
		}
		for _, inst := range variants {
			log.Printf("Running instance %s (n=%d, k=%d, %s)", inst.Name, inst.N, inst.K, r.Formulation)
			results = append(results, r.runInstance(inst))
		}
	}
	return results
}

func (r *Runner) runInstance(inst *Instance) Result {
	res := Result{Instance: inst.Name, K: inst.K}
	start := time.Now()

	model, err := r.Factory(inst.Name)
	if err != nil {
		res.Comment = err.Error()
		log.Printf("Instance %s: %s", inst.Name, err)
		return res
	}
	defer model.Free()

	p, err := NewPipeline(model, r.Formulation, inst)
	if err != nil {
		res.Comment = err.Error()
		return res
	}
	for _, step := range []func() error{p.DefineVariables, p.DefineConstraints, p.DefineObjective} {
		if err := step(); err != nil {
			res.Comment = err.Error()
			log.Printf("Instance %s: %s", inst.Name, err)
			return res
		}
	}

	status, err := p.Solve()
	res.Time = time.Since(start).String()
	res.Status = status.String()
	if err != nil {
		res.Comment = err.Error()
		log.Printf("Instance %s: %s", inst.Name, err)
		return res
	}
	if status != StatusOptimal {
		res.Comment = fmt.Sprintf("%s: status %s", ErrNotSolved, status)
		log.Printf("Instance %s not solved. Status: %s", inst.Name, status)
		return res
	}

	obj, err := model.ObjVal()
	if err != nil {
		res.Comment = err.Error()
		return res
	}
	res.Solved = true
	res.Objective = int(obj + 0.5)
	log.Printf("Instance %s solved with objective %d", inst.Name, res.Objective)

	report, err := p.Validate()
	res.Validation = report
	if err != nil {
		var serr *StructuralError
		if errors.As(err, &serr) {
			// Formulation defect; report it loudly and keep the result marked.
			log.Printf("VALIDATION FAILED for %s: %s", inst.Name, err)
		}
		res.Comment = err.Error()
		return res
	}
	log.Printf("Instance %s validated: %d nodes, %d edges, tree=%v, connected=%v",
		inst.Name, len(report.Nodes), len(report.Edges), report.IsTree, report.IsConnected)
	return res
}
