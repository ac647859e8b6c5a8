package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"FundTrend/internal/chart"
	"FundTrend/internal/model"
	"FundTrend/internal/watchlist"
)

// Server exposes the trend view over HTTP: the rendered chart page, the
// payload API, interaction events, and watch-list management.
type Server struct {
	router   *gin.Engine
	httpSrv  *http.Server
	sessions *sessionStore
	watch    *watchlist.Manager
}

// New wires the routes. fetch supplies fund histories for the per-session
// controllers; defaultCode/defaultRange seed fresh sessions.
func New(addr string, watch *watchlist.Manager, fetch chart.FetchFunc, defaultCode string, defaultRange model.RangeKey) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		watch: watch,
	}
	s.sessions = newSessionStore(func() *chart.Controller {
		return chart.NewController(fetch, chart.DefaultState(watch.DefaultCode(defaultCode), defaultRange))
	})
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	api := s.router.Group("/api")
	api.GET("/trend", s.handleTrend)
	api.POST("/zoom", s.handleZoom)
	api.POST("/highlight", s.handleHighlight)
	api.GET("/options", s.handleOptions)
	api.GET("/watchlist", s.handleWatchlist)
	api.POST("/watchlist/import", s.handleImport)
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	ctrl := s.sessions.get(c)
	if err := s.applyQuery(c, ctrl); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	payload := ctrl.Payload(c.Request.Context())

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.NewLineChart(payload).Render(c.Writer); err != nil {
		log.Printf("[ERROR] render chart: %v", err)
	}
}

func (s *Server) handleTrend(c *gin.Context) {
	ctrl := s.sessions.get(c)
	if err := s.applyQuery(c, ctrl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctrl.Payload(c.Request.Context()))
}

// applyQuery folds selection parameters into the session state. Absent
// parameters leave the corresponding state untouched.
func (s *Server) applyQuery(c *gin.Context, ctrl *chart.Controller) error {
	if code := c.Query("code"); code != "" {
		if !watchlist.ValidCode(code) {
			return errors.New("code 必须为 6 位数字")
		}
		ctrl.SetCode(code)
	}
	if rk := c.Query("range"); rk != "" {
		key := model.RangeKey(rk)
		if !key.Valid() {
			return errors.New("range 不是有效的区间")
		}
		ctrl.SetRange(key)
	}
	if labels, present := c.Request.URL.Query()["ma"]; present {
		ctrl.SetMAs(labels)
	}
	return nil
}

func (s *Server) handleZoom(c *gin.Context) {
	var req struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctrl := s.sessions.get(c)
	ctrl.SetZoom(model.ZoomWindow{Start: req.Start, End: req.End})
	c.JSON(http.StatusOK, gin.H{"zoom": ctrl.State().Zoom})
}

func (s *Server) handleHighlight(c *gin.Context) {
	var req struct {
		Gain     *bool `json:"gain"`
		Drawdown *bool `json:"drawdown"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctrl := s.sessions.get(c)
	ctrl.SetHighlights(req.Gain, req.Drawdown)
	st := ctrl.State()
	c.JSON(http.StatusOK, gin.H{"gain": st.HighlightGain, "drawdown": st.HighlightDrawdown})
}

// handleOptions lists the range and moving-average choices for UI builders.
func (s *Server) handleOptions(c *gin.Context) {
	ranges := make([]gin.H, 0, len(model.RangeItems))
	for _, it := range model.RangeItems {
		ranges = append(ranges, gin.H{"key": it.Key, "label": it.Label})
	}
	c.JSON(http.StatusOK, gin.H{"ranges": ranges, "moving_averages": model.StandardMAs})
}

func (s *Server) handleWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"funds": s.watch.Entries()})
}

func (s *Server) handleImport(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, err := s.watch.Import(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "配置为空或格式不符合要求"})
		return
	}

	// If the import dropped the session's selected fund, fall back to a
	// code that still exists.
	ctrl := s.sessions.get(c)
	if st := ctrl.State(); !s.watch.Has(st.Code) {
		ctrl.SetCode(s.watch.DefaultCode(st.Code))
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}
