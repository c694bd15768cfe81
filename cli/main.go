package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2f9e44")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu      list.Model
	pantryTable   table.Model
	matchTable    table.Model
	shoppingTable table.Model
	matches       []RecipeMatch
	shopping      []ShoppingListItem
	textInput     textinput.Model
	spinner       spinner.Model
	client        *ApiClient
	email         string
	currentView   string
	message       string
	error         string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Initialize main menu items
	items := []list.Item{
		item{title: "Pantry", desc: "View pantry items and expiry status"},
		item{title: "Recipe Matches", desc: "See which recipes you can cook right now"},
		item{title: "Shopping List", desc: "Review and check off missing ingredients"},
		item{title: "Exit", desc: "Exit the application"},
	}

	// Initialize main menu
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "PantryKit CLI"

	// Initialize pantry view
	pantryTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 22},
			{Title: "Quantity", Width: 12},
			{Title: "Status", Width: 14},
			{Title: "Days Left", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// Initialize match view
	matchTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Recipe", Width: 24},
			{Title: "Match", Width: 8},
			{Title: "Ingredients", Width: 12},
			{Title: "Difficulty", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// Initialize shopping view
	shoppingTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 22},
			{Title: "Quantity", Width: 12},
			{Title: "For Recipe", Width: 20},
			{Title: "Purchased", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// Initialize text input for login
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return Model{
		mainMenu:      mainMenu,
		pantryTable:   pantryTable,
		matchTable:    matchTable,
		shoppingTable: shoppingTable,
		spinner:       s,
		textInput:     ti,
		client:        NewApiClient(),
		currentView:   "login",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			switch m.currentView {
			case "login":
				email := m.textInput.Value()
				if email == "" {
					m.error = "Please enter an email address"
					return m, nil
				}
				m.email = email
				return m, doLogin(m.client, email)
			case "main":
				if selected, ok := m.mainMenu.SelectedItem().(item); ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Pantry":
						m.currentView = "pantry"
						return m, fetchPantry(m.client)
					case "Recipe Matches":
						m.currentView = "matches"
						return m, fetchMatches(m.client)
					case "Shopping List":
						m.currentView = "shopping"
						return m, fetchShopping(m.client)
					}
				}
			}
		case "esc":
			if m.currentView != "main" && m.currentView != "login" {
				m.currentView = "main"
				m.message = ""
				m.error = ""
			}
		case "c":
			if m.currentView == "matches" {
				if recipeID := m.selectedRecipeID(); recipeID != "" {
					return m, cookRecipe(m.client, recipeID)
				}
			}
		case "a":
			if m.currentView == "matches" {
				if recipeID := m.selectedRecipeID(); recipeID != "" {
					return m, addToShoppingList(m.client, recipeID)
				}
			}
		case " ":
			if m.currentView == "shopping" {
				if itemID := m.selectedShoppingID(); itemID != "" {
					return m, togglePurchased(m.client, itemID)
				}
			}
		case "q":
			if m.currentView == "main" {
				return m, tea.Quit
			}
		}

	case loginMsg:
		m.currentView = "main"
		m.error = ""
		return m, nil

	case pantryMsg:
		m.pantryTable.SetRows(pantryRows(msg.items))
		return m, nil

	case matchesMsg:
		m.matches = msg.matches
		m.matchTable.SetRows(matchRows(msg.matches))
		return m, nil

	case shoppingMsg:
		m.shopping = msg.items
		m.shoppingTable.SetRows(shoppingRows(msg.items))
		return m, nil

	case confirmMsg:
		m.message = msg.message
		m.error = ""
		switch m.currentView {
		case "matches":
			return m, fetchMatches(m.client)
		case "shopping":
			return m, fetchShopping(m.client)
		}
		return m, nil

	case errorMsg:
		m.error = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "login":
		m.textInput, cmd = m.textInput.Update(msg)
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "pantry":
		m.pantryTable, cmd = m.pantryTable.Update(msg)
	case "matches":
		m.matchTable, cmd = m.matchTable.Update(msg)
	case "shopping":
		m.shoppingTable, cmd = m.shoppingTable.Update(msg)
	}

	return m, cmd
}

// selectedRecipeID returns the id of the highlighted recipe match
func (m Model) selectedRecipeID() string {
	cursor := m.matchTable.Cursor()
	if cursor < 0 || cursor >= len(m.matches) {
		return ""
	}
	return m.matches[cursor].Recipe.ID
}

// selectedShoppingID returns the id of the highlighted shopping item
func (m Model) selectedShoppingID() string {
	cursor := m.shoppingTable.Cursor()
	if cursor < 0 || cursor >= len(m.shopping) {
		return ""
	}
	return m.shopping[cursor].ID
}

// View renders the UI
func (m Model) View() string {
	status := ""
	if m.message != "" {
		status = "\n" + successStyle.Render(m.message) + "\n"
	}
	if m.error != "" {
		status = "\n" + errorStyle.Render(m.error) + "\n"
	}

	switch m.currentView {
	case "login":
		return docStyle.Render(titleStyle.Render("PantryKit Login") + "\n\n" +
			"Email address:\n" + m.textInput.View() + "\n\nPress 'enter' to sign in" + status)
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "pantry":
		help := "\nPress 'esc' to go back\n"
		return docStyle.Render(titleStyle.Render("Pantry") + "\n\n" + m.pantryTable.View() + status + help)
	case "matches":
		help := "\nPress 'c' to cook, 'a' to add missing ingredients to shopping list, 'esc' to go back\n"
		return docStyle.Render(titleStyle.Render("Recipe Matches") + "\n\n" + m.matchTable.View() + status + help)
	case "shopping":
		help := "\nPress 'space' to toggle purchased, 'esc' to go back\n"
		return docStyle.Render(titleStyle.Render("Shopping List") + "\n\n" + m.shoppingTable.View() + status + help)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type loginMsg struct{}

type pantryMsg struct {
	items []PantryItem
}

type matchesMsg struct {
	matches []RecipeMatch
}

type shoppingMsg struct {
	items []ShoppingListItem
}

type errorMsg struct {
	err string
}

type confirmMsg struct {
	message string
}

// doLogin authenticates against the API
func doLogin(client *ApiClient, email string) tea.Cmd {
	return func() tea.Msg {
		if err := client.Login(email, "cli"); err != nil {
			return errorMsg{err: fmt.Sprintf("Login failed: %v", err)}
		}
		return loginMsg{}
	}
}

// fetchPantry retrieves pantry items from the API
func fetchPantry(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetPantry()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching pantry: %v", err)}
		}
		return pantryMsg{items: items}
	}
}

// fetchMatches retrieves ranked recipe matches from the API
func fetchMatches(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		matches, err := client.GetMatches()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching matches: %v", err)}
		}
		return matchesMsg{matches: matches}
	}
}

// fetchShopping retrieves the shopping list from the API
func fetchShopping(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetShoppingList()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching shopping list: %v", err)}
		}
		return shoppingMsg{items: items}
	}
}

// cookRecipe cooks the selected recipe
func cookRecipe(client *ApiClient, recipeID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.CookRecipe(recipeID); err != nil {
			return errorMsg{err: fmt.Sprintf("Error cooking recipe: %v", err)}
		}
		return confirmMsg{message: "Recipe cooked, pantry updated"}
	}
}

// addToShoppingList queues the selected recipe's missing ingredients
func addToShoppingList(client *ApiClient, recipeID string) tea.Cmd {
	return func() tea.Msg {
		added, err := client.AddToShoppingList(recipeID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error updating shopping list: %v", err)}
		}
		if added == 0 {
			return confirmMsg{message: "All missing ingredients are already on the list"}
		}
		return confirmMsg{message: fmt.Sprintf("Added %d ingredients to shopping list", added)}
	}
}

// togglePurchased flips the purchased flag on the selected item
func togglePurchased(client *ApiClient, itemID string) tea.Cmd {
	return func() tea.Msg {
		if err := client.TogglePurchased(itemID); err != nil {
			return errorMsg{err: fmt.Sprintf("Error updating item: %v", err)}
		}
		return confirmMsg{message: "Shopping list updated"}
	}
}

// pantryRows converts pantry items to table rows
func pantryRows(items []PantryItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{
			it.Name,
			fmt.Sprintf("%g %s", it.Quantity, it.Unit),
			it.Status,
			fmt.Sprintf("%d", it.DaysUntilExpiry),
		}
	}
	return rows
}

// matchRows converts recipe matches to table rows
func matchRows(matches []RecipeMatch) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, m := range matches {
		rows[i] = table.Row{
			m.Recipe.Name,
			fmt.Sprintf("%d%%", m.MatchPercentage),
			fmt.Sprintf("%d/%d", m.MatchedIngredients, m.TotalIngredients),
			m.Recipe.Difficulty,
		}
	}
	return rows
}

// shoppingRows converts shopping list items to table rows
func shoppingRows(items []ShoppingListItem) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		purchased := " "
		if it.Purchased {
			purchased = "x"
		}
		rows[i] = table.Row{
			it.Name,
			fmt.Sprintf("%g %s", it.Quantity, it.Unit),
			it.RecipeName,
			purchased,
		}
	}
	return rows
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
