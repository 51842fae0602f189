package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/payload"
	"github.com/goliatone/go-beiform/pkg/service"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/testsupport"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// stubDriver answers field prompts by message and menus in order. Unscripted
// field prompts keep their current value.
type stubDriver struct {
	inputs     map[string][]string
	picks      map[string][]int
	menus      []int
	confirm    []bool
	confirmErr error

	menuOptions  [][]string
	infoMessages []string
	menuPos      int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if queue := s.inputs[cfg.Message]; len(queue) > 0 {
		s.inputs[cfg.Message] = queue[1:]
		return queue[0], nil
	}
	return cfg.Default, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmErr != nil {
		return false, s.confirmErr
	}
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) > 0 && cfg.Options[0] == unsetOption {
		if queue := s.picks[cfg.Message]; len(queue) > 0 {
			s.picks[cfg.Message] = queue[1:]
			return queue[0], nil
		}
		return cfg.DefaultIndex, nil
	}
	s.menuOptions = append(s.menuOptions, cfg.Options)
	if s.menuPos >= len(s.menus) {
		return -1, errors.New("no select scripted")
	}
	val := s.menus[s.menuPos]
	s.menuPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type fakeBackend struct {
	result *service.ComputeResult
	calls  int
}

func (f *fakeBackend) Compute(_ context.Context, _ *payload.Payload) (*service.ComputeResult, error) {
	f.calls++
	return f.result, nil
}

func (f *fakeBackend) Report(_ context.Context, _ *payload.Payload) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.7"), nil
}

func repeat(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func script(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func newWizard(driver PromptDriver, backend submit.Backend) *Wizard {
	opts := []Option{WithPromptDriver(driver)}
	if backend != nil {
		opts = append(opts, WithSession(submit.NewSession(submit.NewSubmitter(backend))))
	}
	return New(opts...)
}

func TestRunComputeAndQuit(t *testing.T) {
	bei := 0.8512
	backend := &fakeBackend{result: &service.ComputeResult{Status: service.StatusOK, BEI: &bei}}
	driver := &stubDriver{
		confirm: []bool{false},
		menus: script(
			[]int{0},     // basic: next
			repeat(8, 0), // section steps: next
			[]int{0},     // review: compute
			[]int{2},     // review: quit
		),
	}

	res, err := newWizard(driver, backend).Run(testsupport.Context(), testsupport.MustLoadSnapshot(t, testsupport.Office))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Outcome == nil || res.Outcome.Status != submit.StatusOK {
		t.Fatalf("expected ok outcome, got %+v", res.Outcome)
	}
	if backend.calls != 1 {
		t.Fatalf("expected one backend call, got %d", backend.calls)
	}
	if !driver.sawInfo("BEI: 0.85") {
		t.Fatalf("expected BEI notice, got %v", driver.infoMessages)
	}
	if !driver.sawInfo("[10/10] 確認・出力") {
		t.Fatalf("expected review header, got %v", driver.infoMessages)
	}
	want := []string{MenuCompute, MenuBack, MenuQuit}
	if diff := cmp.Diff(want, driver.menuOptions[len(driver.menuOptions)-1]); diff != "" {
		t.Fatalf("review menu mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBlockedJumpsToFailingStep(t *testing.T) {
	bei := 0.95
	backend := &fakeBackend{result: &service.ComputeResult{Status: service.StatusOK, BEI: &bei}}
	driver := &stubDriver{
		inputs:  map[string][]string{"建物名称": {"", "新ビル"}, "窓面積（m2）": {"8"}},
		picks:   map[string][]int{"建具の種類": {1}},
		confirm: []bool{false, false},
		menus: script(
			[]int{0},       // basic: next
			[]int{3, 0, 0}, // openings: edit row 1, then next
			repeat(7, 0),   // remaining section steps
			[]int{0},       // review: compute, blocked
			[]int{0},       // basic: next
			repeat(8, 0),
			[]int{0}, // review: compute
			[]int{2}, // review: quit
		),
	}

	res, err := newWizard(driver, backend).Run(context.Background(), testsupport.MustLoadSnapshot(t, testsupport.Incomplete))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !driver.sawInfo(validation.RequiredInputMessage) {
		t.Fatalf("expected refusal message, got %v", driver.infoMessages)
	}
	if !driver.sawInfo("「基本情報」へ移動します。") {
		t.Fatalf("expected jump notice, got %v", driver.infoMessages)
	}
	if backend.calls != 1 {
		t.Fatalf("blocked submission reached the backend: %d calls", backend.calls)
	}
	if got := res.Snapshot.Building.BuildingName; got != "新ビル" {
		t.Fatalf("expected edited building name, got %q", got)
	}
	if got := res.Snapshot.Windows[0].WindowType; got.Blank() {
		t.Fatalf("expected window type to be picked")
	}
	if res.Outcome == nil || res.Outcome.Status != submit.StatusOK {
		t.Fatalf("expected final ok outcome, got %+v", res.Outcome)
	}
}

func TestSmallBuildingSkipsExemptSections(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{false},
		menus:   []int{0, 0, 0, 2}, // basic, openings, insulation: next; envelope: quit
	}
	res, err := newWizard(driver, nil).Run(context.Background(), testsupport.MustLoadSnapshot(t, testsupport.Small))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Outcome != nil {
		t.Fatalf("nothing should be submitted, got %+v", res.Outcome)
	}
	if !driver.sawInfo("外皮仕様（様式B3）は小規模版のため入力不要です。") {
		t.Fatalf("expected exemption notice, got %v", driver.infoMessages)
	}
	want := []string{MenuNext, MenuBack, MenuQuit}
	if diff := cmp.Diff(want, driver.menuOptions[3]); diff != "" {
		t.Fatalf("envelope menu mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveRow(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{false},
		menus:   []int{0, 4, 0, 5}, // basic: next; openings: remove row 1, quit
	}
	res, err := newWizard(driver, nil).Run(context.Background(), testsupport.MustLoadSnapshot(t, testsupport.Office))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := res.Snapshot.RowCount(form.SectionWindows); n != 0 {
		t.Fatalf("expected no window rows, got %d", n)
	}
}

func TestAdvisoryFieldsPrompted(t *testing.T) {
	driver := &stubDriver{
		inputs:  map[string][]string{"外皮平均熱貫流率 UA（W/(m2K)）": {"0.45"}},
		confirm: []bool{true},
		menus:   []int{2}, // basic: quit
	}
	res, err := newWizard(driver, nil).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := res.Snapshot.Performance.UAValue; got != "0.45" {
		t.Fatalf("expected UA value, got %q", got)
	}
}

func TestAbortPropagates(t *testing.T) {
	driver := &stubDriver{confirmErr: ErrAborted}
	_, err := newWizard(driver, nil).Run(context.Background(), nil)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestGoToErrorFollowsFirstPath(t *testing.T) {
	driver := &stubDriver{
		confirm: []bool{false},
		menus: script(
			[]int{0},
			repeat(8, 0),
			[]int{0}, // review without session: go to error
			[]int{5}, // openings: quit
		),
	}
	snap := testsupport.MustLoadSnapshot(t, testsupport.Office)
	snap.Windows[0].WindowType = ""

	if _, err := newWizard(driver, nil).Run(context.Background(), snap); err != nil {
		t.Fatalf("run: %v", err)
	}
	review := driver.menuOptions[9]
	if diff := cmp.Diff([]string{MenuGoToError, MenuBack, MenuQuit}, review); diff != "" {
		t.Fatalf("review menu mismatch (-want +got):\n%s", diff)
	}
	if !driver.sawInfo("[2/10] 開口部") {
		t.Fatalf("expected to land on the openings step, got %v", driver.infoMessages)
	}
}

func TestValidatorFor(t *testing.T) {
	number := validatorFor(form.KindNumber)
	for _, ok := range []string{"", "1.5", " 12 "} {
		if err := number(ok); err != nil {
			t.Fatalf("number(%q): %v", ok, err)
		}
	}
	if err := number("abc"); !errors.Is(err, errNotNumber) {
		t.Fatalf("expected errNotNumber, got %v", err)
	}
	if err := validatorFor(form.KindCount)("x"); !errors.Is(err, errNotInteger) {
		t.Fatalf("expected errNotInteger, got %v", err)
	}
	if validatorFor(form.KindText) != nil {
		t.Fatalf("text fields take any input")
	}
}

func TestStepSectionsFollowRouter(t *testing.T) {
	w := New(WithPromptDriver(&stubDriver{}))
	step, _ := w.router.Step(wizard.StepAirCondition)
	owned, skipped := w.stepSections(form.NewSnapshot(), step)
	var got []form.Section
	for _, info := range owned {
		got = append(got, info.Name)
	}
	want := []form.Section{form.SectionHeatSources, form.SectionOutdoorAir, form.SectionPumps, form.SectionFans}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if len(skipped) != 0 {
		t.Fatalf("blank snapshot is not small, skipped %v", skipped)
	}
}
