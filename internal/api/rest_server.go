package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/voxel-perception/internal/entity"
	"github.com/annel0/voxel-perception/internal/logging"
	"github.com/annel0/voxel-perception/internal/middleware"
	"github.com/annel0/voxel-perception/internal/perception"
	"github.com/annel0/voxel-perception/internal/vec"
)

// RestServer — REST-поверхность движка восприятия. Все эндпоинты
// только читают: каждый запрос — независимый снапшот-запрос к движку.
type RestServer struct {
	router  *gin.Engine
	engine  *perception.Engine
	port    string
	metrics *ServerMetrics
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port   string             // порт для запуска сервера (вида ":8090")
	Engine *perception.Engine // движок восприятия
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8090"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	router.Use(otelgin.Middleware("perception_api"))

	promMw := middleware.NewPrometheusMiddleware("perception_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		engine:  config.Engine,
		port:    config.Port,
		metrics: NewServerMetrics(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := rs.router.Group("/api")

	percept := api.Group("/perception")
	{
		percept.GET("/objects", rs.handleObjects)
		percept.GET("/objects/closest", rs.handleClosestObject)
		percept.GET("/holes", rs.handleHoles)
		percept.GET("/blocks", rs.handleBlocks)
		percept.GET("/mobs", rs.handleMobs)
		percept.GET("/ground", rs.handleGround)
	}

	relations := api.Group("/relations")
	{
		relations.POST("/between", rs.handleBetween)
		relations.POST("/between/find", rs.handleFindBetween)
		relations.POST("/inside", rs.handleInside)
		relations.POST("/inside/find", rs.handleFindInside)
	}

	api.GET("/server", rs.handleServerInfo)
}

// Start запускает сервер в фоне
func (rs *RestServer) Start() {
	go func() {
		logging.Info("REST API запущен на %s", rs.port)
		if err := rs.router.Run(rs.port); err != nil {
			logging.Error("REST API остановлен с ошибкой: %v", err)
		}
	}()
}

// Router возвращает внутренний gin.Engine (для тестов)
func (rs *RestServer) Router() *gin.Engine {
	return rs.router
}

// queryPos извлекает координату из параметров x, y, z
func queryPos(c *gin.Context) (vec.Vec3, bool) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errY != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "требуются целые параметры x, y, z"})
		return vec.Vec3{}, false
	}
	return vec.Vec3{X: x, Y: y, Z: z}, true
}

// queryRadius извлекает необязательный радиус (0 — дефолт движка)
func queryRadius(c *gin.Context) int {
	r, err := strconv.Atoi(c.DefaultQuery("radius", "0"))
	if err != nil || r < 0 {
		return 0
	}
	return r
}

func blockObjectJSON(obj perception.BlockObject) []gin.H {
	out := make([]gin.H, len(obj))
	for i, b := range obj {
		out[i] = gin.H{
			"pos":  [3]int{b.Pos.X, b.Pos.Y, b.Pos.Z},
			"id":   b.Block.ID,
			"meta": b.Block.Meta,
		}
	}
	return out
}

func (rs *RestServer) handleObjects(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	objects := rs.engine.AllNearbyObjects(pos)
	out := make([][]gin.H, len(objects))
	for i, obj := range objects {
		out[i] = blockObjectJSON(obj)
	}
	c.JSON(http.StatusOK, gin.H{"objects": out})
}

func (rs *RestServer) handleClosestObject(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	obj, found := rs.engine.ClosestNearbyObject(pos)
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "object": blockObjectJSON(obj)})
}

func (rs *RestServer) handleHoles(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	holes, err := rs.engine.AllNearbyHoles(pos)
	if err != nil {
		// Нарушение инварианта заметания — это баг, а не свойство мира
		logging.Error("Поиск ям прерван: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, len(holes))
	for i, h := range holes {
		coords := make([][3]int, len(h.Coords))
		for j, p := range h.Coords {
			coords[j] = [3]int{p.X, p.Y, p.Z}
		}
		out[i] = gin.H{
			"coords": coords,
			"fill":   gin.H{"id": h.Fill.ID, "meta": h.Fill.Meta},
		}
	}
	c.JSON(http.StatusOK, gin.H{"holes": out})
}

func (rs *RestServer) handleBlocks(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	blocks := rs.engine.FindNearbyBlocks(pos, queryRadius(c))
	out := make([]gin.H, len(blocks))
	for i, b := range blocks {
		out[i] = gin.H{
			"pos":  [3]int{b.Pos.X, b.Pos.Y, b.Pos.Z},
			"id":   b.Block.ID,
			"meta": b.Block.Meta,
		}
	}
	c.JSON(http.StatusOK, gin.H{"blocks": out})
}

func (rs *RestServer) handleMobs(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	radius := float64(queryRadius(c))
	if radius == 0 {
		radius = 20
	}

	found := rs.engine.FindNearbyMobs(pos.ToFloat(), radius, c.QueryArray("name")...)
	out := make(map[string][]gin.H, len(found))
	for name, sightings := range found {
		list := make([]gin.H, len(sightings))
		for i, s := range sightings {
			list[i] = gin.H{"id": s.ID, "pos": [3]float64{s.Pos.X, s.Pos.Y, s.Pos.Z}}
		}
		out[name] = list
	}
	c.JSON(http.StatusOK, gin.H{"mobs": out})
}

func (rs *RestServer) handleGround(c *gin.Context) {
	pos, ok := queryPos(c)
	if !ok {
		return
	}

	radius := queryRadius(c)
	if radius == 0 {
		radius = 10
	}
	c.JSON(http.StatusOK, gin.H{"heights": rs.engine.GroundHeight(pos, radius)})
}

// relationRequest — JSON-тело запроса отношения: списки координат сущностей
type relationRequest struct {
	E0 [][3]int `json:"e0"`
	E1 [][3]int `json:"e1"`
	E2 [][3]int `json:"e2"`
}

func refOf(coords [][3]int) entity.Ref {
	locs := make([]vec.Vec3, len(coords))
	for i, c := range coords {
		locs[i] = vec.Vec3{X: c[0], Y: c[1], Z: c[2]}
	}
	return entity.Blocks(locs)
}

func (rs *RestServer) handleBetween(c *gin.Context) {
	var req relationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	between := rs.engine.CheckBetween(refOf(req.E0), refOf(req.E1), refOf(req.E2))
	c.JSON(http.StatusOK, gin.H{"between": between})
}

func (rs *RestServer) handleFindBetween(c *gin.Context) {
	var req relationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pos, found := perception.FindBetween(refOf(req.E0), refOf(req.E1))
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "pos": [3]float64{pos.X, pos.Y, pos.Z}})
}

func (rs *RestServer) handleInside(c *gin.Context) {
	var req relationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inside": perception.CheckInside(refOf(req.E0), refOf(req.E1))})
}

func (rs *RestServer) handleFindInside(c *gin.Context) {
	var req relationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inside := perception.FindInside(refOf(req.E0))
	coords := make([][3]int, len(inside))
	for i, p := range inside {
		coords[i] = [3]int{p.X, p.Y, p.Z}
	}
	c.JSON(http.StatusOK, gin.H{"coords": coords})
}

func (rs *RestServer) handleServerInfo(c *gin.Context) {
	cpu, err := rs.metrics.GetCPUUsage()
	if err != nil {
		cpu = -1
	}
	c.JSON(http.StatusOK, gin.H{
		"uptime":     rs.metrics.GetUptime(),
		"memory_mb":  rs.metrics.GetMemoryUsage(),
		"cpu_pct":    cpu,
		"goroutines": rs.metrics.GetGoroutines(),
	})
}
