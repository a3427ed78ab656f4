// Copyright 2025 OpenBackbone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package control

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Status prints the controller status page to the writer.
func (l *Local) Status(w io.Writer) {
	domainPrefix := "-"
	if l.hasDomainPrefix() {
		domainPrefix = l.domainPrefix.Prefix.String()
	}
	rows := [][]string{
		{"ROLE", string(l.state)},
		{"SEQUENCE NUMBER", fmt.Sprintf("%d", l.cfg.SequenceNumber)},
		{"REREGISTRATION DELAY", fmt.Sprintf("%ds", l.cfg.ReregistrationDelay)},
		{"MLR TIMEOUT", fmt.Sprintf("%ds", l.cfg.MLRTimeout)},
		{"SERVICE PUBLISHED", fmt.Sprintf("%t", l.isServiceAdded)},
		{"REGISTRATION COUNTDOWN", fmt.Sprintf("%d", l.registrationTimeout)},
		{"DOMAIN PREFIX", domainPrefix},
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}
