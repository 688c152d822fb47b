package batch

import (
	"path/filepath"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/leftover"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/placeholder"
	"github.com/arthur-debert/tmplfill/pkg/substitute"
	"github.com/arthur-debert/tmplfill/pkg/types"
	"github.com/arthur-debert/tmplfill/pkg/variables"
	"github.com/rs/zerolog"
)

const (
	outputDirPerm  = 0755
	outputFilePerm = 0644
)

// Options configures a Runner
type Options struct {
	FS         types.FS
	Delimiters placeholder.Delimiters
	// DryRun computes every output without writing it; validation then
	// scans the computed text instead of the files.
	DryRun bool
}

// Runner executes options against a filesystem
type Runner struct {
	logger zerolog.Logger
	fs     types.FS
	engine *substitute.Engine
	dryRun bool
}

// NewRunner creates a runner
func NewRunner(opts Options) *Runner {
	return &Runner{
		logger: logging.GetLogger("batch.runner"),
		fs:     opts.FS,
		engine: substitute.New(opts.Delimiters),
		dryRun: opts.DryRun,
	}
}

// written is what the substitution phase hands to the validation phase
type written struct {
	template     string
	output       string
	replacements int
	text         string
}

// Run processes a single option
func (r *Runner) Run(option types.Option) (*types.RunResult, error) {
	logger := r.logger.With().Str("option", option.ID).Logger()
	done := logging.LogOperationStart(logger, "run")
	defer done()

	vars, err := variables.Load(r.fs, option.VariableFile)
	if err != nil {
		return nil, err
	}

	templates, err := FindTemplates(r.fs, option.TemplateFolder, option.SearchPattern)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("variables", len(vars.Variables)).
		Int("templates", len(templates)).
		Bool("dryRun", r.dryRun).
		Msg("starting option run")

	if !r.dryRun {
		if err := r.fs.MkdirAll(option.OutputFolder, outputDirPerm); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output folder %s", option.OutputFolder).
				WithDetail("option", option.ID).
				WithDetail("path", option.OutputFolder)
		}
	}

	outputs, err := r.substitutionPhase(option, vars.Variables, templates)
	if err != nil {
		return nil, err
	}

	result := &types.RunResult{
		Option:    option,
		Variables: len(vars.Variables),
		Skipped:   vars.Skipped,
		Files:     r.validationPhase(outputs),
		DryRun:    r.dryRun,
	}

	logger.Info().
		Int("files", len(result.Files)).
		Int("unresolved", result.UnresolvedCount()).
		Msg("option run completed")

	return result, nil
}

// Check runs the validation phase alone over the outputs an earlier run
// produced for option
func (r *Runner) Check(option types.Option) (*types.RunResult, error) {
	templates, err := FindTemplates(r.fs, option.TemplateFolder, option.SearchPattern)
	if err != nil {
		return nil, err
	}

	outputs := make([]written, 0, len(templates))
	for _, template := range templates {
		outputs = append(outputs, written{
			template: template,
			output:   OutputPath(option, template),
		})
	}

	// Checking always reads from disk, even for a dry-run runner.
	checker := *r
	checker.dryRun = false

	return &types.RunResult{
		Option: option,
		Files:  checker.validationPhase(outputs),
	}, nil
}

// substitutionPhase reads, substitutes and writes every template in order.
// The first failure aborts the phase.
func (r *Runner) substitutionPhase(option types.Option, vars []types.Variable, templates []string) ([]written, error) {
	outputs := make([]written, 0, len(templates))

	for _, template := range templates {
		data, err := r.fs.ReadFile(template)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", template).
				WithDetail("option", option.ID).
				WithDetail("path", template)
		}

		applied := r.engine.Apply(string(data), vars)
		output := OutputPath(option, template)

		if !r.dryRun {
			if err := r.fs.WriteFile(output, []byte(applied.Text), outputFilePerm); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write output %s", output).
					WithDetail("option", option.ID).
					WithDetail("path", output)
			}
		}

		r.logger.Debug().
			Str("template", template).
			Str("output", output).
			Int("plain", applied.Plain).
			Int("encoded", applied.Encoded).
			Bool("dryRun", r.dryRun).
			Msg("substituted template")

		outputs = append(outputs, written{
			template:     template,
			output:       output,
			replacements: applied.Total(),
			text:         applied.Text,
		})
	}

	return outputs, nil
}

// validationPhase scans every output for leftover placeholders. It never
// fails: unreadable outputs are logged and reported as missing.
func (r *Runner) validationPhase(outputs []written) []types.FileResult {
	results := make([]types.FileResult, 0, len(outputs))

	for _, out := range outputs {
		fileResult := types.FileResult{
			Template:     out.template,
			Output:       out.output,
			Replacements: out.replacements,
		}

		if r.dryRun {
			fileResult.Unresolved = leftover.FindUnresolved(out.text)
		} else {
			found, exists, err := leftover.ScanFile(r.fs, out.output)
			if err != nil {
				r.logger.Warn().Err(err).Str("output", out.output).Msg("cannot validate output")
			}
			fileResult.Unresolved = found
			fileResult.Missing = !exists
		}

		if fileResult.HasUnresolved() {
			r.logger.Warn().
				Str("output", out.output).
				Strs("unresolved", fileResult.Unresolved).
				Msg("unresolved placeholders")
		}

		results = append(results, fileResult)
	}

	return results
}

// OutputPath is where the output of template is written for option
func OutputPath(option types.Option, template string) string {
	return filepath.Join(option.OutputFolder, filepath.Base(template))
}
