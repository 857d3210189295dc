// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rcode "github.com/saferwall/rcode"
)

type tabType int

const (
	headerTab tabType = iota
	segmentsTab
	typeInfoTab
)

var tabNames = [...]string{"Header", "Segments", "Type Info"}

// model is the bubbletea model for a single decoded r-code artifact,
// grounded on jdiag's internal/tui.Model tab-switching shape.
type model struct {
	info    *rcode.RCodeInfo
	path    string
	current tabType
	width   int
	height  int
}

func newModel(path string, info *rcode.RCodeInfo) model {
	return model{path: path, info: info, current: headerTab}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.current = headerTab
		case "2":
			m.current = segmentsTab
		case "3":
			m.current = typeInfoTab
		case "left", "h":
			if m.current > headerTab {
				m.current--
			}
		case "right", "l":
			if m.current < typeInfoTab {
				m.current++
			}
		}
	}
	return m, nil
}

var (
	tabBarStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m model) View() string {
	bar := ""
	for i, name := range tabNames {
		style := tabBarStyle
		if tabType(i) == m.current {
			style = activeTabStyle
		}
		bar += style.Render(fmt.Sprintf(" %d:%s ", i+1, name))
	}

	body := ""
	switch m.current {
	case headerTab:
		body = fmt.Sprintf("path: %s\nversion: %#x (major %d)\nis64: %v\ntimestamp: %d\nclass: %v",
			m.path, m.info.GetVersion(), m.info.GetVersionMajor(), m.info.Is64Bit(),
			m.info.GetTimeStamp(), m.info.IsClass())

	case segmentsTab:
		body = "digest:\n"
		d := m.info.Digest()
		body += fmt.Sprintf("digest present: %v (signers: %d)", d.Present, d.SignerCount)

	case typeInfoTab:
		ti := m.info.GetTypeInfo()
		if ti == nil {
			body = "no type block (procedure artifact)"
			break
		}
		body = fmt.Sprintf("name: %s\nparent: %s\nmethods: %d  properties: %d  variables: %d  events: %d  tables: %d",
			ti.Name(), ti.ParentName(), len(ti.Methods()), len(ti.Properties()),
			len(ti.Variables()), len(ti.Events()), len(ti.Tables()))
	}

	return bar + "\n\n" + body + "\n\n(1-3 to switch tabs, q to quit)"
}

func runTUI(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	opts := loadOpts()
	info, err := rcode.NewBytes(data, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(path, info))
	_, err = p.Run()
	return err
}
