package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-cms/config"
	"course-cms/internal/api/handler"
	"course-cms/internal/api/middleware"
	"course-cms/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎；rdb 为 nil 时提交限流降级放行
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders(cfg.Server.BaseURL))
	// multipart 边界与表单字段需要少量额外空间
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadMB<<20 + 1<<20))

	// ── 首页与健康检查 ──
	r.GET("/", h.System.Greeting)
	r.GET("/health", h.System.Health)

	// ── 本地存储文件回读 ──
	if h.File != nil {
		r.GET("/files/:key", h.File.GetFile)
	}

	api := r.Group("/api")
	{
		// 课程模块
		courses := api.Group("/courses")
		{
			courses.GET("/", h.Course.ListCourses)
			courses.POST("/", h.Course.CreateCourse)
			courses.GET("/:id/", h.Course.GetCourse)
			courses.DELETE("/:id/", h.Course.DeleteCourse)
			courses.POST("/:id/add/", h.Course.AddUser)
			courses.POST("/:id/drop/", h.Course.DropUser)
			courses.POST("/:id/assignment/", h.Course.CreateAssignment)
			courses.GET("/:id/gradebook/", h.Export.Gradebook)
			courses.GET("/:id/calendar/", h.Export.Calendar)
		}

		// 用户模块
		users := api.Group("/users")
		{
			users.GET("/", h.User.ListUsers)
			users.POST("/", h.User.CreateUser)
			users.GET("/:id/", h.User.GetUser)
			users.DELETE("/:id/", h.User.DeleteUser)
		}

		// 作业模块
		assignments := api.Group("/assignments")
		{
			assignments.GET("/:id/", h.Assignment.GetAssignment)
			assignments.POST("/:id/", h.Assignment.UpdateAssignment)
			assignments.POST("/:id/submit/",
				middleware.RateLimit(rdb, cfg.RateLimit.SubmitLimit, cfg.RateLimit.SubmitWindow, logger),
				h.Assignment.Submit,
			)
			assignments.POST("/:id/grade/", h.Assignment.Grade)
		}

		// 运维诊断（默认关闭）
		if cfg.Feature.MaintenanceEnabled {
			api.GET("/schema/:table/", h.Maintenance.TableSchema)
		}
	}

	return r
}
