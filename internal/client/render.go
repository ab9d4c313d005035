package client

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const maskedPassword = "••••••••"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// renderEntries draws entries as a table numbered from 1. Passwords are
// masked unless reveal is set.
func renderEntries(entries []models.IndexedEntry, reveal bool) string {
	if len(entries) == 0 {
		return helpStyle.Render("no entries") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		password := maskedPassword
		if reveal {
			password = e.Entry.Password
		}
		if e.Entry.LoginMethod == models.LoginMethodGoogle && e.Entry.Password == "" {
			password = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Index + 1),
			e.Entry.Site,
			e.Entry.Username,
			password,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "SITE", "USERNAME", "PASSWORD").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return strings.TrimRight(t.String(), "\n") + "\n"
}

// indexAll pairs entries with their list positions.
func indexAll(entries []models.VaultEntry) []models.IndexedEntry {
	out := make([]models.IndexedEntry, len(entries))
	for i, e := range entries {
		out[i] = models.IndexedEntry{Index: i, Entry: e}
	}
	return out
}
