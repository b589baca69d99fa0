// internal/app/handlers_profiles.go
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/bulle/internal/app/popupctl"
	"github.com/llehouerou/bulle/internal/errmsg"
	"github.com/llehouerou/bulle/internal/keymap"
	"github.com/llehouerou/bulle/internal/log"
	"github.com/llehouerou/bulle/internal/profiles"
	"github.com/llehouerou/bulle/internal/ui/layout"
	"github.com/llehouerou/bulle/internal/ui/textinput"
)

// deleteProfile is the confirm context of a pending deletion.
type deleteProfile struct {
	ID   int64
	Name string
}

func (m *Model) profileListHeight() int {
	return max(layout.BodyHeight(m.Height)-2, 1)
}

func (m *Model) focusedProfile() (profiles.Profile, bool) {
	pos := m.profileCursor.Pos()
	if pos < 0 || pos >= len(m.profileList) {
		return profiles.Profile{}, false
	}
	return m.profileList[pos], true
}

func (m *Model) handleProfilesAction(a keymap.Action) tea.Cmd {
	n := len(m.profileList)
	switch a {
	case keymap.ActionUp:
		m.profileCursor.Move(-1, n, m.profileListHeight())
	case keymap.ActionDown:
		m.profileCursor.Move(1, n, m.profileListHeight())
	case keymap.ActionSelect:
		if p, ok := m.focusedProfile(); ok {
			return LoadProfileCmd(m.ctx, m.profiles, p.ID)
		}
	case keymap.ActionProfileSave:
		return m.popups.ShowTextInput(popupctl.InputProfileName, "Save current setup as",
			"", textinput.Options{Placeholder: "Profile name"}, nil)
	case keymap.ActionProfileDelete:
		if p, ok := m.focusedProfile(); ok {
			return m.popups.ShowConfirm("Delete profile",
				fmt.Sprintf("Delete %q? This cannot be undone.", p.Name),
				deleteProfile{ID: p.ID, Name: p.Name})
		}
	case keymap.ActionProfileExport:
		return ExportProfilesCmd(m.profiles, m.exportPath)
	case keymap.ActionProfileImport:
		return ImportProfilesCmd(m.ctx, m.profiles, m.exportPath)
	}
	return nil
}

func (m *Model) saveProfile(name string) tea.Cmd {
	p, err := m.profiles.Save(name, m.Section.String())
	if errors.Is(err, profiles.ErrEmptyName) {
		m.notices.Mascot(msgNameProfile)
		return nil
	}
	if err != nil {
		log.ErrorErr(log.CatProfiles, "save profile", err, "name", name)
		m.notices.Error(errmsg.FormatWith(errmsg.OpProfileSave, name, err))
		return nil
	}
	m.refreshProfiles()
	for i, item := range m.profileList {
		if item.ID == p.ID {
			m.profileCursor.Jump(i, len(m.profileList), m.profileListHeight())
		}
	}
	m.notices.Mascot(profileMessage("saved", p.Name))
	return nil
}

func (m *Model) deleteProfile(d deleteProfile) tea.Cmd {
	if err := m.profiles.Delete(d.ID); err != nil {
		log.ErrorErr(log.CatProfiles, "delete profile", err, "id", d.ID)
		m.notices.Error(errmsg.FormatWith(errmsg.OpProfileDelete, d.Name, err))
		return nil
	}
	m.refreshProfiles()
	m.notices.Mascot(profileMessage("deleted", d.Name))
	return nil
}

func (m *Model) handleProfileLoaded(msg ProfileLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		log.ErrorErr(log.CatProfiles, "load profile", msg.Err, "name", msg.Profile.Name)
		m.notices.Error(errmsg.FormatWith(errmsg.OpProfileLoad, msg.Profile.Name, msg.Err))
		if msg.Profile.ID == 0 {
			return nil
		}
	} else {
		if s, ok := ParseSection(msg.Profile.Section); ok {
			m.setSection(s)
		}
		m.notices.Mascot(profileMessage("loaded", msg.Profile.Name))
	}
	if k, ok := m.visuals.Current(); ok {
		m.focusVisual(k)
	}
	m.layout()
	return m.scheduleFrame()
}

func (m *Model) handleProfilesIO(msg ProfilesIOMsg) {
	if msg.Err != nil {
		log.ErrorErr(log.CatProfiles, string(msg.Op), msg.Err, "path", msg.Path)
		m.notices.Error(errmsg.FormatWith(msg.Op, msg.Path, msg.Err))
		return
	}
	switch msg.Op {
	case errmsg.OpProfileExport:
		m.notices.Success(fmt.Sprintf("Exported %d profiles to %s", msg.Count, msg.Path))
	case errmsg.OpProfileImport:
		m.refreshProfiles()
		m.notices.Success(fmt.Sprintf("Imported %d profiles", msg.Count))
	}
}
