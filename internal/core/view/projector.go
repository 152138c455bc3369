// Package view は社員一覧から表示用の派生データ（検索結果と集計）を計算します。
package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary は一覧の集計値です。Max は件数 0 のとき nil です。
type Summary struct {
	Count   int
	Total   float64
	Average float64
	Max     *employee.Employee
}

// Filter は名前・社員 ID・収入の文字列表現に term を含むレコードを順序を保って返します。
// term が空白のみの場合は records をそのまま返します。
func Filter(records []*employee.Employee, term string) []*employee.Employee {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(trimmed)

	matched := make([]*employee.Employee, 0, len(records))
	for _, emp := range records {
		if emp == nil {
			continue
		}
		if strings.Contains(fold.String(emp.Name), needle) ||
			strings.Contains(fold.String(emp.BusinessID), needle) ||
			strings.Contains(IncomeText(emp.Income), needle) {
			matched = append(matched, emp)
		}
	}
	return matched
}

// Summarize は件数・合計・平均（小数点以下 2 桁で丸め）・最大収入のレコードを計算します。
// 最大値が同額の場合は先に現れたレコードを返します。
func Summarize(records []*employee.Employee) Summary {
	var summary Summary
	for _, emp := range records {
		if emp == nil {
			continue
		}
		summary.Count++
		summary.Total += emp.Income
		if summary.Max == nil || emp.Income > summary.Max.Income {
			summary.Max = emp
		}
	}

	if summary.Count > 0 {
		summary.Average = roundCents(summary.Total / float64(summary.Count))
	}
	return summary
}

// IncomeText は検索や CSV に使う収入の最短の 10 進表現を返します。
func IncomeText(income float64) string {
	return strconv.FormatFloat(income, 'f', -1, 64)
}

// FormatIncome は収入を "$90,000" のようにドル単位・桁区切り付きで整形します。
// int64 に収まらない値は桁区切り無しで出力します。
func FormatIncome(income float64) string {
	rounded := math.Round(income)
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) || math.Abs(rounded) >= 1<<63 {
		return "$" + strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return "$" + p.Sprintf("%d", int64(rounded))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
