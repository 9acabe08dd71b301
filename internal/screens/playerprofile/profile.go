package playerprofile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/screens/history"
	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/layout"
)

// Status lines shown after an action.
const (
	MsgRenamed       = "Profil berhasil diupdate!"
	MsgCleared       = "Riwayat berhasil dihapus!"
	MsgNothingExport = "Tidak ada data untuk diexport!"
	MsgEmptyName     = "Nama tidak boleh kosong!"
)

// Confirmation prompts.
const (
	PromptClear  = "Hapus semua riwayat diagnosa? (y/n)"
	PromptLogout = "Apakah Anda yakin ingin keluar? (y/n)"
)

type mode int

const (
	modeView mode = iota
	modeRename
	modeConfirmClear
	modeConfirmLogout
)

// ProfileScreen shows the player's stats and history and lets them rename
// the profile, clear history, export, or log out.
type ProfileScreen struct {
	profiles  *profile.Store
	exportDir string
	login     screen.Factory
	now       func() time.Time

	mode  mode
	input components.TextInput

	loaded   bool
	username string
	profile  *profile.Profile
	summary  profile.Summary

	status    string
	statusErr bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.InputCapturer = (*ProfileScreen)(nil)

// New creates a ProfileScreen. Exports are written to exportDir; login
// builds the screen shown after logout.
func New(profiles *profile.Store, exportDir string, login screen.Factory) *ProfileScreen {
	return &ProfileScreen{
		profiles:  profiles,
		exportDir: exportDir,
		login:     login,
		now:       time.Now,
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProfileScreen) load() tea.Cmd {
	profiles := s.profiles
	return func() tea.Msg {
		ctx := context.Background()
		username, ok := profiles.CurrentUser(ctx)
		if !ok {
			return profileLoadedMsg{}
		}
		p, _ := profiles.Profile(ctx, username)
		return profileLoadedMsg{
			username: username,
			profile:  p,
			summary:  profile.Summarize(username, p, profiles.Locale()),
			loggedIn: true,
		}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profil"
}

func (s *ProfileScreen) CapturingInput() bool {
	return s.mode != modeView
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeRename:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Simpan"},
			{Key: "Esc", Description: "Batal"},
		}
	case modeConfirmClear:
		return []layout.KeyHint{
			{Key: "Y", Description: "Hapus"},
			{Key: "N", Description: "Batal"},
		}
	case modeConfirmLogout:
		return []layout.KeyHint{
			{Key: "Y", Description: "Logout"},
			{Key: "N", Description: "Batal"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Ubah nama"},
		{Key: "C", Description: "Hapus riwayat"},
		{Key: "H", Description: "Riwayat"},
		{Key: "E", Description: "Export"},
		{Key: "L", Description: "Logout"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if !msg.loggedIn {
			login := s.login()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: login} }
		}
		s.loaded = true
		s.username = msg.username
		s.profile = msg.profile
		s.summary = msg.summary
		return s, nil
	case statusMsg:
		s.status = msg.text
		s.statusErr = msg.isErr
		return s, nil
	case tea.KeyMsg:
		switch s.mode {
		case modeRename:
			return s.handleRenameKey(msg)
		case modeConfirmClear, modeConfirmLogout:
			return s.handleConfirmKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.mode == modeRename {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded {
		return s, nil
	}
	switch msg.String() {
	case "r":
		s.mode = modeRename
		s.status = ""
		s.input = components.NewTextInput("Nama baru", s.username, 32)
		return s, s.input.Init()
	case "c":
		s.mode = modeConfirmClear
		s.status = ""
		return s, nil
	case "h":
		next := history.New(s.profiles)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "e":
		return s, s.export()
	case "l":
		s.mode = modeConfirmLogout
		s.status = ""
		return s, nil
	}
	return s, nil
}

func (s *ProfileScreen) handleRenameKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeView
		return s, nil
	case "enter":
		newName, err := s.profiles.RenameUser(context.Background(), s.username, s.input.Value())
		if errors.Is(err, profile.ErrEmptyUsername) {
			s.input.SetError(MsgEmptyName)
			return s, nil
		}
		s.mode = modeView
		if err != nil {
			return s, status(err.Error(), true)
		}
		return s, tea.Batch(
			func() tea.Msg { return screen.UserChangedMsg{Username: newName} },
			status(MsgRenamed, false),
			s.load(),
		)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ProfileScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		confirmed := s.mode
		s.mode = modeView
		if confirmed == modeConfirmLogout {
			return s, s.logout()
		}
		if err := s.profiles.ClearHistory(context.Background(), s.username); err != nil {
			return s, status(err.Error(), true)
		}
		return s, tea.Batch(status(MsgCleared, false), s.load())
	case "n", "t", "esc":
		s.mode = modeView
	}
	return s, nil
}

func (s *ProfileScreen) export() tea.Cmd {
	profiles, username, dir, now := s.profiles, s.username, s.exportDir, s.now()
	return func() tea.Msg {
		data, err := profiles.Export(context.Background(), username)
		if errors.Is(err, profile.ErrNothingToExport) {
			return statusMsg{text: MsgNothingExport, isErr: true}
		}
		if err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		path := filepath.Join(dir, profile.ExportFilename(username, now))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		return statusMsg{text: "Data berhasil diexport: " + path}
	}
}

func (s *ProfileScreen) logout() tea.Cmd {
	if err := s.profiles.Logout(context.Background()); err != nil {
		return status(err.Error(), true)
	}
	login := s.login()
	return tea.Batch(
		func() tea.Msg { return screen.UserChangedMsg{} },
		func() tea.Msg { return router.ResetScreenMsg{Screen: login} },
	)
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: isErr} }
}
