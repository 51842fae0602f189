package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/reference"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

// unsetOption leaves a select cell blank.
const unsetOption = "（未選択）"

var (
	errNotNumber  = errors.New("数値を入力してください")
	errNotInteger = errors.New("整数を入力してください")
)

func (w *Wizard) basicPage(ctx context.Context, snap *form.Snapshot) (action, error) {
	for {
		for _, f := range form.FieldsOf(snap.Building) {
			if err := w.promptPath(ctx, snap, form.BuildingPath(f.Key), f); err != nil {
				return actionStay, err
			}
		}
		extra, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "設計一次エネルギー消費量・外皮性能も入力しますか？"})
		if err != nil {
			return actionStay, err
		}
		if extra {
			if err := w.advisoryFields(ctx, snap); err != nil {
				return actionStay, err
			}
		}

		choice, err := w.menu(ctx, "基本情報", []string{MenuNext, MenuRetry, MenuQuit})
		if err != nil {
			return actionStay, err
		}
		if choice != MenuRetry {
			return navAction(choice), nil
		}
	}
}

func (w *Wizard) advisoryFields(ctx context.Context, snap *form.Snapshot) error {
	for _, c := range reference.Categories() {
		f := form.Field{Key: string(c), Label: c.Label(), Kind: form.KindNumber, Unit: "MJ/年"}
		if err := w.promptPath(ctx, snap, form.DesignEnergyPath(string(c)), f); err != nil {
			return err
		}
	}
	for _, f := range form.FieldsOf(snap.Performance) {
		if err := w.promptPath(ctx, snap, form.PerformancePath(f.Key), f); err != nil {
			return err
		}
	}
	return nil
}

// stepSections lists the sections owned by step that apply to snap.
func (w *Wizard) stepSections(snap *form.Snapshot, step wizard.Step) (owned, skipped []form.SectionInfo) {
	for _, info := range form.Sections() {
		if w.router.StepForFieldPath(form.CellPath(info.Name, 0, form.CountKey)) != step.ID {
			continue
		}
		if info.SmallExempt && snap.IsSmall() {
			skipped = append(skipped, info)
			continue
		}
		owned = append(owned, info)
	}
	return owned, skipped
}

func (w *Wizard) sectionPage(ctx context.Context, snap *form.Snapshot, step wizard.Step) (action, error) {
	for {
		owned, skipped := w.stepSections(snap, step)
		for _, info := range skipped {
			if err := w.notice(ctx, fmt.Sprintf("%s（%s）は小規模版のため入力不要です。", info.Label, info.Sheet)); err != nil {
				return actionStay, err
			}
		}
		for _, info := range owned {
			if err := w.notice(ctx, fmt.Sprintf("%s（%s）: %d 行", info.Label, info.Sheet, snap.RowCount(info.Name))); err != nil {
				return actionStay, err
			}
		}

		items := []string{MenuNext, MenuBack}
		if len(owned) > 0 {
			items = append(items, MenuAddRow, MenuEditRow, MenuRemoveRow)
		}
		items = append(items, MenuQuit)
		choice, err := w.menu(ctx, step.Label, items)
		if err != nil {
			return actionStay, err
		}

		switch choice {
		case MenuAddRow, MenuEditRow, MenuRemoveRow:
			if err := w.rowAction(ctx, snap, owned, choice); err != nil {
				return actionStay, err
			}
		default:
			return navAction(choice), nil
		}
	}
}

func (w *Wizard) rowAction(ctx context.Context, snap *form.Snapshot, owned []form.SectionInfo, choice string) error {
	info, err := w.pickSection(ctx, owned)
	if err != nil {
		return err
	}
	switch choice {
	case MenuAddRow:
		index, err := snap.AddRow(info.Name)
		if err != nil {
			return err
		}
		return w.editRow(ctx, snap, info.Name, index)
	case MenuEditRow:
		index, ok, err := w.pickRow(ctx, snap, info)
		if err != nil || !ok {
			return err
		}
		return w.editRow(ctx, snap, info.Name, index)
	default:
		index, ok, err := w.pickRow(ctx, snap, info)
		if err != nil || !ok {
			return err
		}
		return snap.RemoveRow(info.Name, index)
	}
}

func (w *Wizard) pickSection(ctx context.Context, owned []form.SectionInfo) (form.SectionInfo, error) {
	if len(owned) == 1 {
		return owned[0], nil
	}
	labels := make([]string, len(owned))
	for i, info := range owned {
		labels[i] = fmt.Sprintf("%s（%s）", info.Label, info.Sheet)
	}
	idx, err := w.driver.Select(ctx, SelectConfig{Message: "対象の表", Options: labels})
	if err != nil {
		return form.SectionInfo{}, err
	}
	if idx < 0 || idx >= len(owned) {
		idx = 0
	}
	return owned[idx], nil
}

func (w *Wizard) pickRow(ctx context.Context, snap *form.Snapshot, info form.SectionInfo) (int, bool, error) {
	rows := snap.Rows(info.Name)
	if len(rows) == 0 {
		return 0, false, w.notice(ctx, info.Label+"に行がありません。")
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = fmt.Sprintf("%d: %s", i+1, rowLabel(row))
	}
	idx, err := w.driver.Select(ctx, SelectConfig{Message: "対象の行", Options: labels})
	if err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= len(rows) {
		return 0, false, nil
	}
	return idx, true, nil
}

// rowLabel names a row by its first filled cell.
func rowLabel(row form.Row) string {
	for _, c := range row.Cells() {
		if !c.Value.Blank() {
			return c.Value.Text()
		}
	}
	return "（空）"
}

func (w *Wizard) editRow(ctx context.Context, snap *form.Snapshot, section form.Section, index int) error {
	rows := snap.Rows(section)
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("%w: %s[%d]", form.ErrRowIndex, section, index)
	}
	for _, f := range form.FieldsOf(rows[index]) {
		if err := w.promptPath(ctx, snap, form.CellPath(section, index, f.Key), f); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wizard) promptPath(ctx context.Context, snap *form.Snapshot, path string, f form.Field) error {
	current, err := snap.Get(path)
	if err != nil {
		return err
	}
	value, err := w.promptField(ctx, f, current)
	if err != nil {
		return err
	}
	return snap.Set(path, value)
}

func (w *Wizard) promptField(ctx context.Context, f form.Field, current form.Value) (form.Value, error) {
	message := f.Label
	if f.Unit != "" {
		message += "（" + f.Unit + "）"
	}

	if len(f.Options) > 0 {
		options := append([]string{unsetOption}, f.Options...)
		def := 0
		for i, o := range f.Options {
			if o == current.Text() {
				def = i + 1
			}
		}
		idx, err := w.driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def, PageSize: 12})
		if err != nil {
			return "", err
		}
		if idx <= 0 || idx >= len(options) {
			return "", nil
		}
		return form.Value(options[idx]), nil
	}

	in, err := w.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   current.Text(),
		Validator: validatorFor(f.Kind),
	})
	if err != nil {
		return "", err
	}
	return form.Value(strings.TrimSpace(in)), nil
}

// validatorFor accepts blank answers; required-ness is reported on review.
func validatorFor(kind form.Kind) func(string) error {
	switch kind {
	case form.KindNumber:
		return func(s string) error {
			v := form.Value(s)
			if _, ok := v.Float(); !ok && !v.Blank() {
				return errNotNumber
			}
			return nil
		}
	case form.KindInteger, form.KindCount:
		return func(s string) error {
			v := form.Value(s)
			if _, ok := v.Int(); !ok && !v.Blank() {
				return errNotInteger
			}
			return nil
		}
	}
	return nil
}
