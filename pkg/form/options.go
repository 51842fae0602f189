package form

import "github.com/goliatone/go-beiform/pkg/buildingtype"

// option lists offered by select cells, keyed by the `options` struct tag.
var optionLists = map[string][]string{
	"regions":             {"1地域", "2地域", "3地域", "4地域", "5地域", "6地域", "7地域", "8地域"},
	"solar_regions":       {"A1区分", "A2区分", "A3区分", "A4区分", "A5区分"},
	"directions":          {"北", "東", "南", "西", "なし"},
	"envelope_directions": {"北", "東", "西", "南", "屋根", "床"},
	"window_types": {
		"樹脂製(単板ガラス)", "樹脂製(二層複層ガラス)", "樹脂製(三層以上の複層ガラス)",
		"木製(単板ガラス)", "木製(二層複層ガラス)", "木製(三層以上の複層ガラス)",
		"金属樹脂複合製(単板ガラス)", "金属樹脂複合製(二層複層ガラス)", "金属樹脂複合製(三層以上の複層ガラス)",
		"金属木複合製(単板ガラス)", "金属木複合製(二層複層ガラス)", "金属木複合製(三層以上の複層ガラス)",
		"金属製(単板ガラス)", "金属製(二層以上の複層ガラス)",
	},
	"part_classes": {"外壁", "屋根", "外気に接する床"},
	"insulation_input_methods": {
		"断熱材の種類(大分類のみ)と厚みを入力する", "断熱材の種類と厚みを入力する",
		"熱伝導率と厚みを入力する", "熱貫流率を入力する", "入力しない",
	},
	"insulation_materials": {
		"グラスウール断熱材通常品", "グラスウール断熱材高性能品", "吹込み用グラスウール断熱材",
		"ロックウール断熱材", "吹込み用ロックウール断熱材", "吹付けロックウール",
		"吹込み用セルローズファイバー断熱材", "押出法ポリスチレンフォーム断熱材",
		"ポリエチレンフォーム断熱材", "ビーズ法ポリスチレンフォーム断熱材",
		"硬質ウレタンフォーム断熱材", "吹付け硬質ウレタンフォーム",
		"フェノールフォーム断熱材", "インシュレーションファイバー断熱材",
	},
	"heat_source_types": {
		"ウォータチリングユニット(空冷式)", "ウォータチリングユニット(水冷式)",
		"ターボ冷凍機", "スクリュー冷凍機",
		"吸収式冷凍機", "吸収式冷凍機(冷却水変流量)",
		"吸収式冷凍機(排熱利用形)", "吸収式冷凍機(排熱利用形、冷却水変流量)",
		"ボイラ", "温水発生機", "地域熱供給",
		"パッケージエアコンディショナ(空冷式)", "パッケージエアコンディショナ(水冷式)",
		"パッケージエアコンディショナ(水冷式熱回収形)",
		"ガスヒートポンプ冷暖房機", "ルームエアコンディショナ",
		"電気式ヒーター等", "FF式暖房機等",
	},
	"ventilation_room_types": {"機械室", "便所", "駐車場", "厨房"},
	"ventilation_methods":    {"第一種換気", "第二種換気", "第三種換気"},
	"boolean":                {"無", "有"},
	"hot_water_use_types":    {"洗面・手洗い", "浴室", "厨房"},
	"insulation_levels":      {"裸管", "保温仕様D", "保温仕様C", "保温仕様B", "保温仕様A", "保温仕様2または3", "保温仕様1"},
	"water_saving":           {"無", "自動給湯栓", "節湯B1"},
	"elevator_controls":      {"交流帰還制御等", "可変電圧可変周波数制御方式(回生なし)", "可変電圧可変周波数制御方式(回生あり)"},
	"solar_cell_types":       {"結晶系太陽電池", "結晶系以外の太陽電池"},
	"install_modes":          {"下記に掲げるもの以外", "屋根置き形", "架台設置形"},
	"panel_directions": {
		"0度(南)", "30度", "60度", "90度(西)", "120度", "150度",
		"180度(北)", "210度", "240度", "270度(東)", "300度", "330度",
	},
	"panel_angles": {
		"0度(水平)", "10度", "20度", "30度", "40度",
		"50度", "60度", "70度", "80度", "90度(垂直)",
	},
	"cogen_heat_recovery": {"冷房のみ", "暖房のみ", "給湯のみ", "冷房と暖房", "冷房と給湯", "暖房と給湯", "冷房と暖房と給湯"},
}

// Options returns a copy of the named option list, or nil when unknown.
// "building_types" resolves to the official model names.
func Options(name string) []string {
	if name == "building_types" {
		return buildingtype.ModelNames()
	}
	list, ok := optionLists[name]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
