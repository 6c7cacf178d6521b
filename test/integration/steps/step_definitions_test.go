package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneytree/backend/internal/application/usecase/analytics"
	"github.com/moneytree/backend/internal/application/usecase/insight"
	"github.com/moneytree/backend/internal/application/usecase/ledger"
	"github.com/moneytree/backend/internal/application/usecase/workflow"
	"github.com/moneytree/backend/internal/domain/entity"
	"github.com/moneytree/backend/internal/infra/server/router"
	"github.com/moneytree/backend/internal/integration/entrypoint/controller"
	"github.com/moneytree/backend/internal/integration/entrypoint/middleware"
	"github.com/moneytree/backend/internal/integration/persistence"
	"github.com/moneytree/backend/internal/integration/persistence/model"
	"github.com/moneytree/backend/test/integration/mock"
)

const advisorTimeout = time.Second

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
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	advisor    *mock.Advisor
	serverPort int
	sessionID  uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testStore *ledger.Store
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
		serverPort: testServerPort,
		advisor:    mock.NewAdvisor(),
		db: mock.NewDb(map[string]any{
			"ledger_snapshots": &model.LedgerSnapshotModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Advisor scripting steps. Registered keyword-free so scenarios can flip
	// the advisor mid-flow.
	ctx.Step(`^the AI advisor suggests category "([^"]*)" with sub-category "([^"]*)" and question "([^"]*)"$`, test.theAdvisorSuggests)
	ctx.Step(`^the AI advisor is unavailable$`, test.theAdvisorIsUnavailable)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I start a new log session$`, test.iStartANewLogSession)
	ctx.When(`^I wait for the session to reach state "([^"]*)"$`, test.iWaitForTheSessionToReachState)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)

	// State assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the advisor should have generated insights (\d+) times?$`, test.theAdvisorShouldHaveGeneratedInsightsTimes)
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
	t.response = nil
	t.sessionID = uuid.Nil

	t.advisor.Reset()

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)
			insightCacheRepo := persistence.NewInsightCacheRepository(mock.NewRedis(), 0)

			// Create the ledger store and its use cases
			store := ledger.NewStore(ledgerRepo)
			testStore = store
			addTransactionUseCase := ledger.NewAddTransactionUseCase(store)
			listHistoryUseCase := ledger.NewListHistoryUseCase(store)
			updateAllowanceUseCase := ledger.NewUpdateAllowanceUseCase(store)

			// Create analytics use cases
			getOverviewUseCase := analytics.NewGetOverviewUseCase(store)
			getSummaryUseCase := analytics.NewGetSummaryUseCase(store)

			// Create insight use case on the scripted advisor
			advisor := mock.NewAdvisor()
			getInsightsUseCase := insight.NewGetInsightsUseCase(store, insightCacheRepo, advisor, advisorTimeout)

			// Create workflow use cases
			sessionManager := workflow.NewSessionManager()
			startSessionUseCase := workflow.NewStartSessionUseCase(sessionManager)
			getSessionUseCase := workflow.NewGetSessionUseCase(sessionManager)
			submitAmountUseCase := workflow.NewSubmitAmountUseCase(sessionManager)
			selectTypeUseCase := workflow.NewSelectTypeUseCase(sessionManager)
			submitContextUseCase := workflow.NewSubmitContextUseCase(sessionManager, advisor, advisorTimeout)
			selectIncomeSourceUseCase := workflow.NewSelectIncomeSourceUseCase(sessionManager, addTransactionUseCase)
			scanBillUseCase := workflow.NewScanBillUseCase(sessionManager, advisor, advisorTimeout)
			confirmUseCase := workflow.NewConfirmUseCase(sessionManager, addTransactionUseCase)
			restartUseCase := workflow.NewRestartUseCase(sessionManager)
			cancelUseCase := workflow.NewCancelUseCase(sessionManager)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return mock.NewRedis().Ping(context.Background()).Err() == nil },
			)
			dashboardController := controller.NewDashboardController(getOverviewUseCase, getSummaryUseCase)
			transactionController := controller.NewTransactionController(listHistoryUseCase, updateAllowanceUseCase)
			insightController := controller.NewInsightController(getInsightsUseCase)
			workflowController := controller.NewWorkflowController(
				startSessionUseCase,
				getSessionUseCase,
				submitAmountUseCase,
				selectTypeUseCase,
				submitContextUseCase,
				selectIncomeSourceUseCase,
				scanBillUseCase,
				confirmUseCase,
				restartUseCase,
				cancelUseCase,
			)

			advisorRateLimiter := middleware.NewRateLimiter()

			r := router.NewRouter(healthController, dashboardController, transactionController, insightController, workflowController, advisorRateLimiter)
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

	// Reload the ledger after the per-scenario wipe so every scenario starts
	// from the seeded cold-start state.
	if testStore != nil {
		if err := testStore.Load(context.Background()); err != nil {
			return fmt.Errorf("failed to reload ledger: %w", err)
		}
	}
	return nil
}

func (t *testContext) theAdvisorSuggests(category, subCategory, question string) error {
	t.advisor.ScriptCategorization(entity.Category(category), subCategory, question)
	return nil
}

func (t *testContext) theAdvisorIsUnavailable() error {
	t.advisor.Fail(errors.New("advisor unavailable"))
	return nil
}

func (t *testContext) iStartANewLogSession() error {
	return t.executeRequest(http.MethodPost, "/api/v1/workflow", nil)
}

func (t *testContext) iWaitForTheSessionToReachState(state string) error {
	if t.sessionID == uuid.Nil {
		return errors.New("no session started")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if err := t.executeRequest(http.MethodGet, "/api/v1/workflow/"+t.sessionID.String(), nil); err != nil {
			return err
		}
		if body, ok := t.response.body.(map[string]any); ok {
			if current, ok := body["state"].(string); ok && current == state {
				return nil
			}
		}
		time.Sleep(25 * time.Millisecond)
	}
	return fmt.Errorf("session never reached state '%s' (last response: %v)", state, t.response.body)
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{session_id}}", t.sessionID.String())
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

		// Capture the workflow session ID when one is returned
		if state, hasState := responseBody["state"]; hasState && state != nil {
			if idStr, ok := responseBody["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.sessionID = id
				}
			}
		}
	}

	return nil
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

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
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

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(arr) != quantity {
		return fmt.Errorf("field '%s' expected %d elements, got %d", field, quantity, len(arr))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.db.CountRows(table)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theAdvisorShouldHaveGeneratedInsightsTimes(quantity int) error {
	if calls := t.advisor.InsightCalls(); calls != quantity {
		return fmt.Errorf("expected %d insight generations, got %d", quantity, calls)
	}
	return nil
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
