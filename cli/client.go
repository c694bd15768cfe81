package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the PantryKit API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("PANTRYKIT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// PantryItem represents an item in the pantry
type PantryItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Category        string    `json:"category"`
	ExpiryDate      time.Time `json:"expiryDate"`
	Status          string    `json:"status"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
}

// Recipe represents a catalog recipe
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CookingTime  int      `json:"cookingTime"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
	Instructions []string `json:"instructions"`
}

// RecipeMatch represents how well the pantry covers a recipe
type RecipeMatch struct {
	Recipe             Recipe `json:"recipe"`
	MatchedIngredients int    `json:"matchedIngredients"`
	TotalIngredients   int    `json:"totalIngredients"`
	MatchPercentage    int    `json:"matchPercentage"`
}

// ShoppingListItem represents an entry on the shopping list
type ShoppingListItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Purchased  bool    `json:"purchased"`
	RecipeName string  `json:"recipeName,omitempty"`
}

func (c *ApiClient) doJSON(method, path string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s failed: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s failed with status code: %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates and stores the session token
func (c *ApiClient) Login(email, password string) error {
	var response struct {
		Token string `json:"token"`
	}
	err := c.doJSON("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &response)
	if err != nil {
		return err
	}

	c.Token = response.Token
	return nil
}

// GetPantry retrieves the pantry, soonest-expiring first
func (c *ApiClient) GetPantry() ([]PantryItem, error) {
	var items []PantryItem
	if err := c.doJSON("GET", "/api/v1/pantry", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMatches retrieves recipes ranked by pantry coverage
func (c *ApiClient) GetMatches() ([]RecipeMatch, error) {
	var matches []RecipeMatch
	if err := c.doJSON("GET", "/api/v1/recipes/matches", nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// CookRecipe cooks a recipe and commits the depleted pantry
func (c *ApiClient) CookRecipe(recipeID string) error {
	return c.doJSON("POST", "/api/v1/recipes/"+recipeID+"/cook", nil, nil)
}

// AddToShoppingList queues a recipe's missing ingredients
func (c *ApiClient) AddToShoppingList(recipeID string) (int, error) {
	var response struct {
		Added int `json:"added"`
	}
	err := c.doJSON("POST", "/api/v1/recipes/"+recipeID+"/shopping-list", nil, &response)
	return response.Added, err
}

// GetShoppingList retrieves the shopping list
func (c *ApiClient) GetShoppingList() ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	if err := c.doJSON("GET", "/api/v1/shopping", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TogglePurchased flips the purchased flag on a shopping list item
func (c *ApiClient) TogglePurchased(itemID string) error {
	return c.doJSON("PUT", "/api/v1/shopping/"+itemID+"/purchased", nil, nil)
}
