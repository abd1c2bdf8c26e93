package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carepoint/hospital-desk/internal/model"
	"github.com/carepoint/hospital-desk/internal/navigation"
)

// dashboard is the authenticated screen: a header and one tab per reachable view
type dashboard struct {
	ui *RootUI

	tabs    *container.AppTabs
	items   map[navigation.Tab]*container.TabItem
	views   map[navigation.Tab]View
	order   []navigation.Tab
	content fyne.CanvasObject
}

func (ui *RootUI) tabTitle(tab navigation.Tab) string {
	switch tab {
	case navigation.TabSymptoms:
		return ui.localization.GetText(KeyTabSymptoms)
	case navigation.TabAppointments:
		return ui.localization.GetText(KeyTabAppointments)
	case navigation.TabDoctors:
		return ui.localization.GetText(KeyTabDoctors)
	case navigation.TabAdmin:
		return ui.localization.GetText(KeyTabAdmin)
	}
	return string(tab)
}

// newView builds the view behind tab
func (ui *RootUI) newView(tab navigation.Tab, book func(model.Doctor, string)) View {
	switch tab {
	case navigation.TabSymptoms:
		v := NewSymptomView(ui.backend, ui.session, ui.localization, ui.run)
		v.SetBookCallback(book)
		return v
	case navigation.TabAppointments:
		return NewAppointmentsView(ui.backend, ui.session, ui.localization, ui.run)
	case navigation.TabDoctors:
		v := NewDoctorsView(ui.backend, ui.session, ui.localization, ui.run)
		v.SetBookCallback(book)
		return v
	case navigation.TabAdmin:
		return NewAdminView(ui.backend, ui.localization, ui.run)
	}
	return nil
}

func newDashboard(ui *RootUI, state navigation.State) *dashboard {
	d := &dashboard{
		ui:    ui,
		items: make(map[navigation.Tab]*container.TabItem),
		views: make(map[navigation.Tab]View),
	}
	flow := ui.bookingFlow()
	book := func(doctor model.Doctor, symptoms string) {
		flow.open(doctor, symptoms)
	}

	tabItems := make([]*container.TabItem, 0, len(state.Tabs))
	for _, tab := range state.Tabs {
		view := ui.newView(tab, book)
		if view == nil {
			continue
		}
		item := container.NewTabItem(ui.tabTitle(tab), view.Content())
		d.items[tab] = item
		d.views[tab] = view
		d.order = append(d.order, tab)
		tabItems = append(tabItems, item)
	}
	d.tabs = container.NewAppTabs(tabItems...)
	d.tabs.SetTabLocation(container.TabLocationTop)
	d.tabs.OnSelected = d.onSelected

	user := state.User
	who := widget.NewLabelWithStyle(user.DisplayName(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	role := NewBadge(user.UserType.Label(), BadgeInfo)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	logoutBtn := widget.NewButton(IconLogout+" "+ui.localization.GetText(KeyLogout), ui.Logout)

	header := container.NewBorder(nil, nil,
		container.NewHBox(who, role),
		container.NewHBox(settingsBtn, logoutBtn),
	)
	d.content = container.NewBorder(container.NewVBox(header, widget.NewSeparator()), nil, nil, nil, d.tabs)
	return d
}

// onSelected forwards a tab click to the router
func (d *dashboard) onSelected(item *container.TabItem) {
	for tab, it := range d.items {
		if it == item {
			if err := d.ui.router.Select(tab); err != nil {
				log.Printf("Tab %s rejected: %v", tab, err)
			}
			return
		}
	}
}

// show makes tab visible and loads its data
func (d *dashboard) show(tab navigation.Tab) {
	item, ok := d.items[tab]
	if !ok {
		return
	}
	if d.tabs.Selected() != item {
		d.tabs.Select(item)
	}
	d.views[tab].Load()
}

// Tabs returns the tabs in display order
func (d *dashboard) Tabs() []navigation.Tab {
	return d.order
}

// View returns the view behind tab, or nil
func (d *dashboard) View(tab navigation.Tab) View {
	return d.views[tab]
}
