package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/batchflow/backend/internal/application/usecase/budget"
	"github.com/batchflow/backend/internal/application/usecase/category"
	"github.com/batchflow/backend/internal/application/usecase/dashboard"
	"github.com/batchflow/backend/internal/application/usecase/recurring"
	"github.com/batchflow/backend/internal/application/usecase/transaction"
	"github.com/batchflow/backend/internal/infra/server/router"
	"github.com/batchflow/backend/internal/integration/cache"
	"github.com/batchflow/backend/internal/integration/entrypoint/controller"
	"github.com/batchflow/backend/internal/integration/entrypoint/middleware"
	"github.com/batchflow/backend/internal/integration/persistence"
	"github.com/batchflow/backend/internal/integration/persistence/model"
	"github.com/batchflow/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	timeMock          *mock.Time
	serverPort        int
	currentCategoryID uuid.UUID
	subcategoryIDs    map[string]uuid.UUID
	currentRuleID     uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Time
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   mock.NewTime(),
		serverPort: testServerPort,
		db: mock.NewDb("batchflow", map[string]any{
			"categories":         &model.CategoryModel{},
			"subcategories":      &model.SubcategoryModel{},
			"transactions":       &model.TransactionModel{},
			"transaction_splits": &model.TransactionSplitModel{},
			"budget_months":      &model.BudgetMonthModel{},
			"budget_entries":     &model.BudgetEntryModel{},
			"recurring_rules":    &model.RecurringRuleModel{},
		}),
	}

	// Pin the clock so next-occurrence projections are stable
	test.timeMock.SetCurrentTime(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	testDB = test.db
	testClock = test.timeMock

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Category setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)" and subcategories "([^"]*)"$`, test.aCategoryExistsWithSubcategories)

	// Transaction setup steps
	ctx.Given(`^a transaction exists on "([^"]*)" for "([^"]*)" in category "([^"]*)"$`, test.aTransactionExistsOnForInCategory)

	// Budget setup steps
	ctx.Given(`^the budget month "([^"]*)" is initialized$`, test.theBudgetMonthIsInitialized)
	ctx.Given(`^a planned amount of "([^"]*)" is set for category "([^"]*)" in "([^"]*)"$`, test.aPlannedAmountIsSetForCategoryIn)

	// Recurring rule setup steps
	ctx.Given(`^a recurring rule "([^"]*)" exists with frequency "([^"]*)" and amount "([^"]*)" starting "([^"]*)" in category "([^"]*)"$`, test.aRecurringRuleExists)
	ctx.Given(`^the recurring rule is paused$`, test.theRecurringRuleIsPaused)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.currentCategoryID = uuid.Nil
	t.subcategoryIDs = make(map[string]uuid.UUID)
	t.currentRuleID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			// Create repositories
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			ruleRepo := persistence.NewRecurringRuleRepository(testDB.DbConn)

			// Create adapters
			summaryCache := cache.NewSummaryCache(mock.NewRedis())

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
			reorderCategoryUseCase := category.NewReorderCategoryUseCase(categoryRepo)
			addSubcategoryUseCase := category.NewAddSubcategoryUseCase(categoryRepo)
			updateSubcategoryUseCase := category.NewUpdateSubcategoryUseCase(categoryRepo)
			deleteSubcategoryUseCase := category.NewDeleteSubcategoryUseCase(categoryRepo)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			// Create budget use cases
			getMonthOverviewUseCase := budget.NewGetMonthOverviewUseCase(categoryRepo, transactionRepo, budgetRepo)
			setPlannedAmountUseCase := budget.NewSetPlannedAmountUseCase(budgetRepo)
			initializeMonthUseCase := budget.NewInitializeMonthUseCase(budgetRepo)
			copyBudgetUseCase := budget.NewCopyBudgetUseCase(budgetRepo)

			// Create recurring use cases
			listRulesUseCase := recurring.NewListRulesUseCase(ruleRepo, testClock)
			createRuleUseCase := recurring.NewCreateRuleUseCase(ruleRepo, categoryRepo)
			updateRuleUseCase := recurring.NewUpdateRuleUseCase(ruleRepo, categoryRepo)
			deleteRuleUseCase := recurring.NewDeleteRuleUseCase(ruleRepo)
			setPausedUseCase := recurring.NewSetPausedUseCase(ruleRepo)
			materializeMonthUseCase := recurring.NewMaterializeMonthUseCase(ruleRepo, transactionRepo)

			// Create dashboard use cases
			getMonthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(
				transactionRepo,
				budgetRepo,
				categoryRepo,
				summaryCache,
				logger,
			)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
				reorderCategoryUseCase,
				addSubcategoryUseCase,
				updateSubcategoryUseCase,
				deleteSubcategoryUseCase,
			)

			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			budgetController := controller.NewBudgetController(
				getMonthOverviewUseCase,
				setPlannedAmountUseCase,
				initializeMonthUseCase,
				copyBudgetUseCase,
			)

			recurringController := controller.NewRecurringController(
				listRulesUseCase,
				createRuleUseCase,
				updateRuleUseCase,
				deleteRuleUseCase,
				setPausedUseCase,
				materializeMonthUseCase,
			)

			dashboardController := controller.NewDashboardController(getMonthlySummaryUseCase)

			writeRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

			r := router.NewRouter(
				healthController,
				categoryController,
				transactionController,
				budgetController,
				recurringController,
				dashboardController,
				writeRateLimiter,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// aCategoryExistsWithNameAndType creates a category with the given name and type.
func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	return t.aCategoryExistsWithSubcategories(name, categoryType, "")
}

// aCategoryExistsWithSubcategories creates a category with a comma-separated
// list of subcategory names.
func (t *testContext) aCategoryExistsWithSubcategories(name, categoryType, subcategories string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Color:     "#6366F1",
		Type:      categoryType,
		SortOrder: t.nextSortOrder(categoryType),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}

	if subcategories == "" {
		return nil
	}
	for i, subName := range strings.Split(subcategories, ",") {
		subName = strings.TrimSpace(subName)
		subID := uuid.New()
		t.subcategoryIDs[subName] = subID
		sub := &model.SubcategoryModel{
			ID:         subID,
			CategoryID: categoryID,
			Name:       subName,
			Position:   i,
		}
		if err := t.db.DbConn.Create(sub).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) nextSortOrder(categoryType string) int {
	var count int64
	t.db.DbConn.Model(&model.CategoryModel{}).Where("type = ?", categoryType).Count(&count)
	return int(count)
}

// aTransactionExistsOnForInCategory creates a flat transaction in the named
// category. The transaction type follows the category type.
func (t *testContext) aTransactionExistsOnForInCategory(date, amount, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ?", categoryName).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:         transactionID,
		Date:       parsedDate,
		Amount:     parsedAmount,
		Type:       categoryModel.Type,
		CategoryID: &categoryModel.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

// theBudgetMonthIsInitialized marks a budget month as set up.
func (t *testContext) theBudgetMonthIsInitialized(monthKey string) error {
	monthModel := &model.BudgetMonthModel{
		MonthKey:  monthKey,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(monthModel).Error
}

// aPlannedAmountIsSetForCategoryIn stores a category-level planned amount.
func (t *testContext) aPlannedAmountIsSetForCategoryIn(amount, categoryName, monthKey string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ?", categoryName).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	if err := t.theBudgetMonthIsInitialized(monthKey); err != nil {
		// The month may already exist
		var existing model.BudgetMonthModel
		if findErr := t.db.DbConn.Where("month_key = ?", monthKey).First(&existing).Error; findErr != nil {
			return err
		}
	}

	now := time.Now().UTC()
	entry := &model.BudgetEntryModel{
		ID:         uuid.New(),
		MonthKey:   monthKey,
		CategoryID: &categoryModel.ID,
		Amount:     parsedAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(entry).Error
}

// aRecurringRuleExists creates a recurring rule in the named category.
func (t *testContext) aRecurringRuleExists(label, frequency, amount, startDate, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ?", categoryName).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	parsedStart, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}

	ruleType := "expense"
	if categoryModel.Type == "income" {
		ruleType = "income"
	}

	ruleID := uuid.New()
	t.currentRuleID = ruleID

	now := time.Now().UTC()
	ruleModel := &model.RecurringRuleModel{
		ID:         ruleID,
		Label:      label,
		Amount:     parsedAmount,
		Type:       ruleType,
		Frequency:  frequency,
		StartDate:  parsedStart,
		CategoryID: categoryModel.ID,
		IsPaused:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(ruleModel).Error
}

// theRecurringRuleIsPaused pauses the most recently created rule.
func (t *testContext) theRecurringRuleIsPaused() error {
	if t.currentRuleID == uuid.Nil {
		return errors.New("no recurring rule created yet")
	}
	return t.db.DbConn.Model(&model.RecurringRuleModel{}).
		Where("id = ?", t.currentRuleID).
		Update("is_paused", true).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{rule_id}}", t.currentRuleID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())

	for name, id := range t.subcategoryIDs {
		placeholder := fmt.Sprintf("{{subcategory_id:%s}}", name)
		content = strings.ReplaceAll(content, placeholder, id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIdentifiers(responseBody)
	}

	return nil
}

// captureIdentifiers pulls well-known IDs out of a response so later steps
// can reference them with placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "frequency"):
		t.currentRuleID = id
	case hasKey(body, "subcategories"):
		t.currentCategoryID = id
		if subs, ok := body["subcategories"].([]any); ok {
			for _, raw := range subs {
				sub, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				name, _ := sub["name"].(string)
				subIDStr, _ := sub["id"].(string)
				if subID, err := uuid.Parse(subIDStr); err == nil && name != "" {
					t.subcategoryIDs[name] = subID
				}
			}
		}
	case hasKey(body, "kind"):
		t.lastTransactionID = id
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
