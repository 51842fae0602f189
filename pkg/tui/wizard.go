package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goliatone/go-beiform/pkg/analysis"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/summary"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// Menu labels.
const (
	MenuNext      = "次へ進む"
	MenuBack      = "前に戻る"
	MenuRetry     = "入力し直す"
	MenuAddRow    = "行を追加"
	MenuEditRow   = "行を編集"
	MenuRemoveRow = "行を削除"
	MenuCompute   = "計算を実行"
	MenuReport    = "PDFレポートを作成"
	MenuGoToError = "エラー箇所へ移動"
	MenuQuit      = "終了"
)

type action int

const (
	actionStay action = iota
	actionNext
	actionBack
	actionQuit
)

// Result is what a wizard run leaves behind.
type Result struct {
	Snapshot *form.Snapshot
	// Outcome is the latest submission, nil when nothing was submitted.
	Outcome *submit.Outcome
}

// Wizard drives a Snapshot through the wizard steps.
type Wizard struct {
	driver     PromptDriver
	session    *submit.Session
	router     *wizard.Router
	aggregator *validation.Aggregator
	renderer   *summary.Renderer
	reportPath string
	theme      Theme
	logger     *slog.Logger
}

// New constructs a Wizard. Without WithPromptDriver it prompts on the
// terminal through survey.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	if w.router == nil {
		w.router = wizard.NewRouter()
	}
	if w.aggregator == nil {
		w.aggregator = validation.NewAggregator()
	}
	if w.renderer == nil {
		w.renderer = summary.NewRenderer()
	}
	return w
}

// Run edits snap until the user quits. A nil snap starts from a fresh
// snapshot. Aborting a prompt returns ErrAborted along with the state
// reached so far.
func (w *Wizard) Run(ctx context.Context, snap *form.Snapshot) (Result, error) {
	if snap == nil {
		snap = form.NewSnapshot()
	}
	res := Result{Snapshot: snap}
	machine := wizard.NewMachine(w.router)
	total := len(w.router.Steps())

	for {
		step := machine.CurrentStep()
		if err := w.driver.Info(ctx, fmt.Sprintf("%s[%d/%d] %s", w.theme.StepPrefix, step.ID, total, step.Label)); err != nil {
			return res, err
		}
		w.logger.Debug("wizard step", "step", step.ID)

		var (
			act action
			err error
		)
		switch step.ID {
		case w.router.Last():
			act, err = w.reviewPage(ctx, machine, &res)
		case w.router.First():
			act, err = w.basicPage(ctx, snap)
		default:
			act, err = w.sectionPage(ctx, snap, step)
		}
		if err != nil {
			return res, err
		}

		switch act {
		case actionNext:
			machine.Next()
		case actionBack:
			machine.Previous()
		case actionQuit:
			return res, nil
		}
		if act != actionStay && w.session != nil {
			// Leaving the page abandons whatever is still in flight.
			w.session.Cancel()
		}
	}
}

func (w *Wizard) menu(ctx context.Context, message string, items []string) (string, error) {
	idx, err := w.driver.Select(ctx, SelectConfig{Message: message, Options: items})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(items) {
		return "", nil
	}
	return items[idx], nil
}

func navAction(choice string) action {
	switch choice {
	case MenuNext:
		return actionNext
	case MenuBack:
		return actionBack
	case MenuQuit:
		return actionQuit
	}
	return actionStay
}

func (w *Wizard) notice(ctx context.Context, msg string) error {
	return w.driver.Info(ctx, w.theme.InfoPrefix+msg)
}

func (w *Wizard) alert(ctx context.Context, msg string) error {
	return w.driver.Info(ctx, w.theme.ErrorPrefix+msg)
}

func (w *Wizard) reviewPage(ctx context.Context, machine *wizard.Machine, res *Result) (action, error) {
	snap := res.Snapshot
	result := w.aggregator.Validate(snap)
	md, err := w.renderer.Markdown(summary.Build(snap, result, res.Outcome, w.router))
	if err != nil {
		return actionStay, err
	}
	if err := w.driver.Info(ctx, md); err != nil {
		return actionStay, err
	}

	var items []string
	if w.session != nil {
		items = append(items, MenuCompute)
		if w.reportPath != "" {
			items = append(items, MenuReport)
		}
	}
	if result.Blocking {
		items = append(items, MenuGoToError)
	}
	items = append(items, MenuBack, MenuQuit)

	choice, err := w.menu(ctx, "操作を選択してください", items)
	if err != nil {
		return actionStay, err
	}
	switch choice {
	case MenuCompute:
		return actionStay, w.submit(ctx, machine, res, submit.KindCompute)
	case MenuReport:
		return actionStay, w.submit(ctx, machine, res, submit.KindReport)
	case MenuGoToError:
		machine.FollowPath(result.FirstPath)
		return actionStay, nil
	}
	return navAction(choice), nil
}

func (w *Wizard) submit(ctx context.Context, machine *wizard.Machine, res *Result, kind submit.Kind) error {
	if w.session == nil {
		return ErrNoSession
	}
	var (
		out submit.Outcome
		err error
	)
	if kind == submit.KindReport {
		out, err = w.session.Report(ctx, res.Snapshot)
	} else {
		out, err = w.session.Compute(ctx, res.Snapshot)
	}
	if err != nil {
		return err
	}
	if out.Stale() {
		return nil
	}
	res.Outcome = &out

	switch out.Status {
	case submit.StatusOK:
		if kind == submit.KindReport {
			if err := os.WriteFile(w.reportPath, out.Report, 0o644); err != nil {
				return fmt.Errorf("tui: write report: %w", err)
			}
			return w.notice(ctx, fmt.Sprintf("レポートを保存しました: %s", w.reportPath))
		}
		if out.Result != nil && out.Result.BEI != nil {
			return w.notice(ctx, "BEI: "+analysis.FormatBEI(*out.Result.BEI))
		}
		return w.notice(ctx, "計算が完了しました。")
	default:
		if err := w.alert(ctx, out.Failure.Message); err != nil {
			return err
		}
		if out.Step != 0 && out.Step != machine.Current() && machine.JumpTo(out.Step) {
			return w.notice(ctx, fmt.Sprintf("「%s」へ移動します。", machine.CurrentStep().Label))
		}
	}
	return nil
}
