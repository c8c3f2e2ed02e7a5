package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/lifeline-inc/dispatch-api/dispatch"
	cadence "github.com/lifeline-inc/dispatch-api/external/cadence"
	"github.com/lifeline-inc/dispatch-api/logmodule"
	"github.com/lifeline-inc/dispatch-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DispatchCore
	mongoStore store.MongoStore

	// Workflow engine
	dispatcher *dispatch.Dispatcher
	responder  *dispatch.Responder

	// Cadence client for nudging the escalation scan
	cadenceClient *cadence.CadenceClient
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	notifier dispatch.Notifier,
	cadenceClient *cadence.CadenceClient) *Server {

	return &Server{
		store:         store.NewDispatchStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		dispatcher:    dispatch.NewDispatcher(mongoStore, notifier),
		responder:     dispatch.NewResponder(mongoStore, notifier),
		cadenceClient: cadenceClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	caseRoute := apiRoute.Group("/cases")
	{
		caseRoute.POST("", s.createCase)
		caseRoute.GET("/:caseID", s.getCase)
		caseRoute.PATCH("/:caseID/status", s.updateCaseStatus)

		caseRoute.GET("/:caseID/hospitals", s.rankHospitals)
		caseRoute.POST("/:caseID/dispatch", s.dispatchCase)

		caseRoute.POST("/:caseID/accept", s.acceptCase)
		caseRoute.POST("/:caseID/reject", s.rejectCase)

		caseRoute.GET("/:caseID/override", s.overridePreview)
		caseRoute.POST("/:caseID/override", s.confirmOverride)

		caseRoute.GET("/:caseID/audit", s.caseAuditTrail)
	}

	hospitalRoute := apiRoute.Group("/hospitals")
	{
		hospitalRoute.GET("", s.listHospitals)
		hospitalRoute.GET("/:hospitalID", s.getHospital)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/escalation-scan", s.triggerEscalationScan)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/queue", s.metricCaseQueue)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("API-KEY") != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Lifeline Dispatch 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
