package locale

import "tidy-planner/internal/model"

var links = tagTable[[]string]{
	{"CA", "toronto"}: {
		model.ExitTagRecycle: {"https://www.toronto.ca/services-payments/recycling-organics-garbage/waste-wizard/"},
	},
	{"CA", ""}: {
		model.ExitTagSell:    {"https://www.facebook.com/marketplace/", "https://www.kijiji.ca/"},
		model.ExitTagRecycle: {"https://www.canada.ca/en/environment-climate-change/services/managing-reducing-waste/municipal-solid/electronics.html"},
		model.ExitTagGive:    {"https://www.facebook.com/groups/", "https://www.freecycle.org/"},
	},
	{"JP", ""}: {
		model.ExitTagSell:    {"https://www.mercari.com/jp/", "https://auctions.yahoo.co.jp/", "https://jmty.jp/"},
		model.ExitTagRecycle: {"https://www.env.go.jp/recycle/"},
		model.ExitTagGive:    {"https://jmty.jp/", "https://www.facebook.com/groups/"},
	},
	{"", ""}: {},
}

var japaneseChecklists = tagTable[[]string]{
	{"", ""}: {
		model.ExitTagSell: {
			"スマホで全体・キズの写真を撮る（3枚程度）",
			"メルカリで同カテゴリの相場を検索し価格を決める",
			"タイトルと説明文を下書き保存しておく",
		},
		model.ExitTagGive: {
			"サッと動作や汚れをチェックする",
			"地域SNS/ジモティーに『譲ります』下書きを作る",
			"受け渡し場所と日時の候補をメモする",
		},
		model.ExitTagRecycle: {
			"自治体サイトで品目名を検索してルールを確認",
			"申し込み窓口や持ち込み先URLをブックマーク",
			"回収前日に運び出しやすい場所へ移動",
		},
		model.ExitTagTrash: {
			"収集日カレンダーで該当日を確認",
			"指定袋にまとめて縛っておく",
			"前夜に玄関付近へ仮置きする",
		},
		model.ExitTagKeep: {
			"軽く掃除してホコリを落とす",
			"保管場所とラベルを決めてまとめる",
			"次回見直し日をメモしておく",
		},
	},
}

var englishChecklists = tagTable[[]string]{
	{"CA", "toronto"}: {
		model.ExitTagRecycle: {
			"Check Toronto Waste Wizard for guidelines",
			"Find nearest drop-off location",
			"Bundle similar items together",
			"Schedule drop-off trip",
		},
	},
	{"", ""}: {
		model.ExitTagSell: {
			"Shoot 2-3 clear photos showing front, back, and any flaws",
			"Scan recent marketplace listings to set a realistic price",
			"Draft the listing title and description and save it",
		},
		model.ExitTagGive: {
			"Do a quick condition check",
			"Draft a 'free pickup' post in local groups",
			"Decide a pickup place and time window",
		},
		model.ExitTagRecycle: {
			"Check local recycling guidelines for the item",
			"Bookmark the drop-off booking page or location",
			"Stage the item near the door the day before drop-off",
		},
		model.ExitTagTrash: {
			"Look up the correct pickup day",
			"Bag and tie items according to sorting rules",
			"Stage the bag by the door the night before",
		},
		model.ExitTagKeep: {
			"Dust or wipe the item quickly",
			"Group it in a clear storage spot with a label",
			"Note a date to review whether it still sparks joy",
		},
	},
}

var japaneseTips = tagTable[string]{
	{"", ""}: {
		model.ExitTagSell:    "明るい自然光で撮ると閲覧数が伸びやすい",
		model.ExitTagGive:    "受け渡し日時を先に決めるとやり取りが短く済む",
		model.ExitTagRecycle: "品目名で検索すると分別区分がすぐ分かる",
		model.ExitTagTrash:   "収集日の前夜にまとめておけば当日の手間がゼロになる",
		model.ExitTagKeep:    "保管箱に中身と日付を書いておくと見直しが楽になる",
	},
}

var englishTips = tagTable[string]{
	{"CA", ""}: {
		model.ExitTagSell: "Listings with a clear price and pickup area get faster replies on Marketplace and Kijiji",
		model.ExitTagGive: "Curbside pickup posts with a time window usually go within a day",
	},
	{"", ""}: {
		model.ExitTagSell:    "Photos in natural light and an honest condition note sell faster",
		model.ExitTagGive:    "Setting a pickup window up front cuts the back-and-forth",
		model.ExitTagRecycle: "Searching the exact item name shows the right drop-off stream",
		model.ExitTagTrash:   "Bagging the night before makes pickup day effortless",
		model.ExitTagKeep:    "Label the box with contents and a review date",
	},
}

var exitTagNames = map[Language]map[model.ExitTag]string{
	Japanese: {
		model.ExitTagSell:    "売る",
		model.ExitTagGive:    "譲る",
		model.ExitTagRecycle: "リサイクル",
		model.ExitTagTrash:   "捨てる",
		model.ExitTagKeep:    "残す",
	},
}

var projectNames = map[Language]string{
	English:  "Declutter Project",
	Japanese: "片付けプロジェクト",
}
