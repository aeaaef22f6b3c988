package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// renderedView 一次页面渲染的模板名和模型
type renderedView struct {
	Name  string
	Model gin.H
}

// recordingRenderer 记录渲染调用,响应体只写模板名
type recordingRenderer struct {
	views []renderedView
}

func (r *recordingRenderer) Instance(name string, data interface{}) render.Render {
	model, _ := data.(gin.H)
	r.views = append(r.views, renderedView{Name: name, Model: model})
	return render.Data{ContentType: "text/html; charset=utf-8", Data: []byte(name)}
}

func (r *recordingRenderer) last() renderedView {
	if len(r.views) == 0 {
		return renderedView{}
	}
	return r.views[len(r.views)-1]
}

func newTestEngine(t *testing.T) (*gin.Engine, *recordingRenderer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rec := &recordingRenderer{}
	r.HTMLRender = rec
	return r, rec
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}
