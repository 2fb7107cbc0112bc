// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
	"github.com/rivo/tview"
)

// rowTemplates render the feed rows. They have the sprig functions, plus:
//   - ago: relative time of a timestamp, such as "3 seconds ago"
//   - kinesis: a stroop amount in whole units
//   - comma: an integer with thousands separators
type rowTemplates struct {
	ledger      *template.Template
	transaction *template.Template
}

func templateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["ago"] = ago
	funcs["kinesis"] = kinesis
	funcs["comma"] = humanize.Comma
	return funcs
}

func ago(t *fftypes.FFTime) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t.Time())
}

func kinesis(stroops *fftypes.FFBigInt) string {
	if stroops == nil {
		return "0"
	}
	return horizon.FormatKinesis(stroops.Int().Int64())
}

func newRowTemplates(ctx context.Context) (*rowTemplates, error) {
	ledger, err := parseRowTemplate(ctx, kxconfig.UILedgerTemplate)
	if err != nil {
		return nil, err
	}
	transaction, err := parseRowTemplate(ctx, kxconfig.UITransactionTemplate)
	if err != nil {
		return nil, err
	}
	return &rowTemplates{
		ledger:      ledger,
		transaction: transaction,
	}, nil
}

func parseRowTemplate(ctx context.Context, key config.RootKey) (*template.Template, error) {
	t, err := template.New(string(key)).Funcs(templateFuncs()).Parse(config.GetString(key))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, kxmsgs.MsgBadTemplate, key)
	}
	return t, nil
}

func renderRows[T any](t *template.Template, records []T) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		buff := new(bytes.Buffer)
		if err := t.Execute(buff, r); err != nil {
			lines = append(lines, fmt.Sprintf("[red]%s[-]", tview.Escape(err.Error())))
			continue
		}
		lines = append(lines, tview.Escape(buff.String()))
	}
	return strings.Join(lines, "\n")
}

func (rt *rowTemplates) renderLedgers(snapshot *apitypes.DashboardSnapshot) string {
	return renderRows(rt.ledger, snapshot.Ledgers)
}

func (rt *rowTemplates) renderTransactions(snapshot *apitypes.DashboardSnapshot) string {
	return renderRows(rt.transaction, snapshot.Transactions)
}

func stateColor(state apitypes.DashboardState) string {
	switch state {
	case apitypes.DashboardStateLive:
		return "green"
	case apitypes.DashboardStateLoading:
		return "yellow"
	default:
		return "gray"
	}
}

func renderStatus(snapshot *apitypes.DashboardSnapshot) string {
	lines := []string{}
	if snapshot.Connection != nil {
		lines = append(lines, fmt.Sprintf("[yellow]Connection:[-] %s  %s",
			tview.Escape(snapshot.Connection.Name), tview.Escape(snapshot.Connection.HorizonURL)))
	} else {
		lines = append(lines, "[yellow]Connection:[-] none selected")
	}
	streaming := make([]string, len(snapshot.Streaming))
	for i, kind := range snapshot.Streaming {
		streaming[i] = string(kind)
	}
	lines = append(lines, fmt.Sprintf("[yellow]State:[-] [%s]%s[-]  [yellow]Streaming:[-] %s  [yellow]Updated:[-] %s",
		stateColor(snapshot.State), snapshot.State, strings.Join(streaming, ", "), ago(snapshot.Updated)))
	if snapshot.Error != "" {
		lines = append(lines, fmt.Sprintf("[red]%s[-]", tview.Escape(snapshot.Error)))
	}
	return strings.Join(lines, "\n")
}
