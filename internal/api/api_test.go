package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/auth"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(store.DriverSQLite, fmt.Sprintf("file:api_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tu := tutor.NewService(nil, tutor.DefaultConfig(), zap.NewNop())
	a := app.New(s, tu, auth.NewTokenManager("test-secret", time.Hour), nil, app.DefaultOptions(), zap.NewNop())
	require.NoError(t, a.Seed(context.Background()))
	return &testServer{t: t, router: NewRouter(a, zap.NewNop())}
}

func (ts *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func (ts *testServer) register(phone string) string {
	ts.t.Helper()
	w, body := ts.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": phone, "password": "secret1", "verificationCode": "123456"})
	require.Equal(ts.t, http.StatusOK, w.Code, body)
	return body["token"].(string)
}

func (ts *testServer) createChild(token string) string {
	ts.t.Helper()
	w, body := ts.do(http.MethodPost, "/api/children", token, gin.H{"nickname": "小明", "grade": "二年级", "interests": []string{"恐龙"}})
	require.Equal(ts.t, http.StatusOK, w.Code, body)
	return body["child"].(map[string]any)["id"].(string)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	w, body := ts.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, body = ts.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "接口不存在", body["error"])
}

func TestAuthRoutes(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "123", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "手机号格式不正确", body["error"])

	w, body = ts.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "请填写所有必填字段", body["error"])

	w, body = ts.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13800138000", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "请填写所有必填字段", body["error"])

	w, body = ts.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"phone": "13800138000", "password": strings.Repeat("密", 25), "verificationCode": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "密码过长", body["error"])

	token := ts.register("13800138000")
	assert.NotEmpty(t, token)

	w, body = ts.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13800138000", "password": "secret1", "verificationCode": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "该手机号已注册", body["error"])

	w, body = ts.do(http.MethodPost, "/api/auth/login", "", gin.H{"phone": "13800138000", "password": "bad-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "手机号或密码错误", body["error"])

	w, body = ts.do(http.MethodPost, "/api/auth/login", "", gin.H{"phone": "13800138000", "password": "secret1", "verificationCode": "123456"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "13800138000", user["phone"])
	assert.NotContains(t, user, "PasswordHash")
	assert.NotContains(t, user, "passwordHash")

	w, body = ts.do(http.MethodPost, "/api/auth/code", "", gin.H{"phone": "13800138000"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["sent"])
	assert.NotContains(t, body, "code")
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(http.MethodGet, "/api/children", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "请先登录", body["error"])

	w, _ = ts.do(http.MethodGet, "/api/children", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := auth.NewTokenManager("other-secret", time.Hour)
	forged, err := other.Issue(uuid.New(), "parent")
	require.NoError(t, err)
	w, _ = ts.do(http.MethodGet, "/api/children", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBindingErrors(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("13800138000")

	req := httptest.NewRequest(http.MethodPost, "/api/children", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "请求格式不正确")

	w, body := ts.do(http.MethodPost, "/api/children", token, gin.H{"nickname": strings.Repeat("长", 30), "grade": "一年级"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "昵称")

	w, body = ts.do(http.MethodPost, "/api/tasks/evaluate", token, gin.H{"taskRecordId": "x", "submission": "y", "timeSpent": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "用时")

	w, body = ts.do(http.MethodPost, "/api/tasks/evaluate", token, gin.H{"taskRecordId": "x", "submission": "y", "timeSpent": int64(10_000_000_000)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "用时")
	assert.NotContains(t, body["error"], "负数")
}

func TestLearningFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("13800138000")
	childID := ts.createChild(token)

	w, body := ts.do(http.MethodGet, "/api/children", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["children"], 1)

	w, body = ts.do(http.MethodPut, "/api/children", token, gin.H{"childId": childID, "nickname": "小红"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "小红", body["child"].(map[string]any)["nickname"])

	w, body = ts.do(http.MethodPost, "/api/assessment", token, gin.H{"childId": childID, "responses": []string{"我喜欢画画"}})
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "initial", body["assessment"].(map[string]any)["type"])
	assert.Contains(t, body, "assessmentResult")

	w, body = ts.do(http.MethodGet, "/api/assessment?childId="+childID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["assessments"], 1)

	w, body = ts.do(http.MethodPost, "/api/tasks/daily", token, gin.H{"childId": childID})
	require.Equal(t, http.StatusOK, w.Code, body)
	recordID := body["taskRecord"].(map[string]any)["id"].(string)
	assert.Equal(t, "故事接龙", body["task"].(map[string]any)["title"])

	w, body = ts.do(http.MethodPost, "/api/tasks/coach", token, gin.H{"childId": childID, "taskId": recordID, "message": "怎么开头？"})
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.NotEmpty(t, body["response"])
	assert.EqualValues(t, 1, body["session"].(map[string]any)["turnCount"])

	w, body = ts.do(http.MethodGet, "/api/tasks/coach?childId="+childID+"&taskId="+recordID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["session"].(map[string]any)["messages"], 2)

	w, body = ts.do(http.MethodPost, "/api/tasks/evaluate", token, gin.H{"taskRecordId": recordID, "submission": "小兔子找到了路", "timeSpent": 300})
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.EqualValues(t, 100, body["xpEarned"])
	assert.Equal(t, "completed", body["taskRecord"].(map[string]any)["status"])
	assert.Contains(t, body["evaluation"], "exemplarAnswer")

	w, body = ts.do(http.MethodPost, "/api/tasks/evaluate", token, gin.H{"taskRecordId": recordID, "submission": "again"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "该任务已完成", body["error"])

	w, body = ts.do(http.MethodGet, "/api/cocreate/themes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	themes := body["themes"].([]any)
	require.NotEmpty(t, themes)
	themeID := themes[0].(map[string]any)["id"].(string)

	w, body = ts.do(http.MethodPost, "/api/cocreate/contribute", token, gin.H{
		"childId": childID, "themeId": themeID, "contributionType": "idea", "content": "会说话的树",
	})
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "idea", body["contribution"].(map[string]any)["type"])

	today := time.Now().Format("2006-01-02")
	weekAgo := time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	w, body = ts.do(http.MethodPost, "/api/weekly-report/generate", token, gin.H{"childId": childID, "weekStart": weekAgo, "weekEnd": today})
	require.Equal(t, http.StatusOK, w.Code, body)
	rep := body["weeklyReport"].(map[string]any)
	assert.EqualValues(t, 1, rep["tasksCompleted"])
	assert.Contains(t, rep, "familyGames")

	w, body = ts.do(http.MethodGet, "/api/growth?childId="+childID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Len(t, body["records"], 1)
	assert.Len(t, body["works"], 1)
	assert.NotNil(t, body["latestReport"])

	w, body = ts.do(http.MethodGet, "/api/children/"+childID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	child := body["child"].(map[string]any)
	assert.EqualValues(t, 100, child["xp"])
	assert.EqualValues(t, 1, child["streak"])
}

func TestOwnership(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.register("13800138000")
	intruder := ts.register("13900139000")
	childID := ts.createChild(owner)

	w, body := ts.do(http.MethodGet, "/api/children/"+childID, intruder, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "孩子档案不存在", body["error"])

	w, _ = ts.do(http.MethodPost, "/api/tasks/daily", intruder, gin.H{"childId": childID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = ts.do(http.MethodPost, "/api/tasks/daily", intruder, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "请提供孩子ID", body["error"])
}

func TestSetupValidator(t *testing.T) {
	assert.NotPanics(t, setupValidator)
	require.NotNil(t, translator)
	assert.PanicsWithValue(t, "api: register cnphone: duplicate", func() {
		must("register "+phoneTag, fmt.Errorf("duplicate"))
	})
	assert.NotPanics(t, func() { must("noop", nil) })
}
