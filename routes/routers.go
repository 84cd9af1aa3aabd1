package routes

import (
	"hotelrev/controllers"
	middlewares "hotelrev/middleware"
	"hotelrev/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.GoogleLogin)
	v1.POST("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/hotels", middlewares.AuthMiddleware(), controllers.GetHotels)
	v1.GET("/hotels/:id", middlewares.AuthMiddleware(), controllers.GetHotelDetail)
	v1.POST("/hotels", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.CreateHotel)
	v1.PUT("/hotels/:id", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UpdateHotel)
	v1.DELETE("/hotels/:id", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin), controllers.DeleteHotel)
	v1.POST("/hotels/:id/assign", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.AssignHotel)
	v1.GET("/topHotels", middlewares.AuthMiddleware(), controllers.GetTopHotels)

	v1.GET("/events", middlewares.AuthMiddleware(), controllers.GetEvents)
	v1.GET("/events/upcoming", middlewares.AuthMiddleware(), controllers.GetUpcomingEvents)
	v1.GET("/events/search", middlewares.AuthMiddleware(), controllers.SearchEvents)
	v1.GET("/events/:id", middlewares.AuthMiddleware(), controllers.GetEventDetail)
	v1.POST("/events", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.CreateEvent)
	v1.PUT("/events/:id", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UpdateEvent)
	v1.DELETE("/events/:id", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin), controllers.DeleteEvent)
	v1.GET("/eventCalendar", middlewares.AuthMiddleware(), controllers.GetEventCalendar)
	v1.POST("/eventFinder", middlewares.AuthMiddleware(), controllers.FindExternalEvents)

	v1.POST("/events/:id/forecasts", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UpsertDayForecast)
	v1.GET("/events/:id/forecasts", middlewares.AuthMiddleware(), controllers.GetEventForecasts)
	v1.POST("/forecasts/monthly", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UpsertMonthlyForecast)
	v1.GET("/hotels/:id/forecasts/monthly", middlewares.AuthMiddleware(), controllers.GetMonthlyForecasts)

	v1.GET("/hotels/:id/actuals", middlewares.AuthMiddleware(), controllers.GetActuals)
	v1.POST("/actuals", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UpsertActual)
	v1.POST("/actuals/upload", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.UploadActuals)

	v1.GET("/dashboard", middlewares.AuthMiddleware(), controllers.GetDashboard)
	v1.GET("/hotels/:id/revenueByMonth", middlewares.AuthMiddleware(), controllers.GetRevenueByMonth)
	v1.GET("/events/:id/variance", middlewares.AuthMiddleware(), controllers.GetEventVariance)
	v1.GET("/monthVariance", middlewares.AuthMiddleware(), controllers.GetMonthVariance)

	v1.GET("/tasks", middlewares.AuthMiddleware(), controllers.GetTasks)
	v1.GET("/tasks/upcoming", middlewares.AuthMiddleware(), controllers.GetUpcomingTasks)
	v1.POST("/tasks", middlewares.AuthMiddleware(), controllers.CreateTask)
	v1.PUT("/tasks/:id", middlewares.AuthMiddleware(), controllers.UpdateTask)
	v1.PUT("/tasks/:id/transition", middlewares.AuthMiddleware(), controllers.TransitionTask)
	v1.DELETE("/tasks/:id", middlewares.AuthMiddleware(models.RoleManager, models.RoleAdmin), controllers.DeleteTask)

	v1.GET("/comments", middlewares.AuthMiddleware(), controllers.GetComments)
	v1.POST("/comments", middlewares.AuthMiddleware(), controllers.CreateComment)
	v1.PUT("/comments/:id/resolve", middlewares.AuthMiddleware(), controllers.ResolveComment)

	v1.GET("/activity", middlewares.AuthMiddleware(), controllers.GetRecentActivity)

	v1.POST("/chat", middlewares.AuthMiddleware(), middlewares.SessionMiddleware(), controllers.ChatHandler)
	v1.GET("/chatHistory", middlewares.AuthMiddleware(), middlewares.SessionMiddleware(), controllers.GetChatHistoryHandler)

	controllers.InitChatSocket(m)
}
