package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/config"
	"github.com/campusrent/backend_v1/internal/controllers"
	"github.com/campusrent/backend_v1/internal/middleware"
	"github.com/campusrent/backend_v1/internal/reservations"
	"github.com/campusrent/backend_v1/internal/session"
	"github.com/campusrent/backend_v1/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, sessions *session.Store, hub *ws.ReservationHub, cfg *config.Config) {
	authCtrl := &controllers.AuthController{DB: db, Sessions: sessions, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL}
	bookingCtrl := &controllers.BookingController{Reservations: reservations.NewService(db), Hub: hub}
	facultyCtrl := &controllers.FacultyController{DB: db}
	buildingCtrl := &controllers.BuildingController{DB: db}
	roomCtrl := &controllers.RoomController{DB: db}
	itemCtrl := &controllers.ItemController{DB: db}
	accountCtrl := &controllers.AccountController{DB: db, Sessions: sessions}
	lookupCtrl := &controllers.LookupController{DB: db}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	authMW := middleware.AuthMiddleware(db, sessions, middleware.AuthConfig{JWTSecret: cfg.JWTSecret})

	student := r.Group("/student")
	{
		student.POST("/login", authCtrl.StudentLogin)

		authed := student.Group("", authMW, middleware.RequireRole(middleware.RoleStudent))
		{
			authed.POST("/logout", authCtrl.Logout)
			authed.GET("/get_available_rooms", bookingCtrl.AvailableRooms)
			authed.GET("/get_available_items", bookingCtrl.AvailableItems)
			authed.GET("/reserved_rooms/:username", bookingCtrl.ReservedRooms)
			authed.GET("/reserved_items/:username", bookingCtrl.ReservedItems)
			authed.POST("/rent_room", bookingCtrl.RentRoom)
			authed.POST("/rent_item", bookingCtrl.RentItem)
		}
	}

	admin := r.Group("/admin_paths")
	{
		admin.POST("/login", authCtrl.AdminLogin)

		authed := admin.Group("", authMW, middleware.RequireRole(middleware.RoleAdmin))
		{
			authed.POST("/logout", authCtrl.Logout)

			authed.POST("/return_room", bookingCtrl.ReturnRoom)
			authed.POST("/return_item", bookingCtrl.ReturnItem)
			authed.GET("/get_all_bookings", bookingCtrl.AllBookings)
			authed.GET("/get_all_item_bookings", bookingCtrl.AllItemBookings)

			authed.GET("/get_all_admins", accountCtrl.ListAdmins)
			authed.GET("/get_all_students", accountCtrl.ListStudents)
			authed.GET("/get_all_faculties", facultyCtrl.ListFaculties)
			authed.GET("/get_all_buildings", buildingCtrl.ListBuildings)
			authed.GET("/get_all_rooms", roomCtrl.ListRooms)
			authed.GET("/get_all_items", itemCtrl.ListItems)

			authed.POST("/add_faculty", facultyCtrl.CreateFaculty)
			authed.POST("/add_building", buildingCtrl.CreateBuilding)
			authed.POST("/add_room", roomCtrl.CreateRoom)
			authed.POST("/add_item", itemCtrl.CreateItem)
			authed.POST("/add_student", accountCtrl.CreateStudent)
			authed.POST("/add_admin", accountCtrl.CreateAdmin)

			authed.DELETE("/delete_faculty/:id", facultyCtrl.DeleteFaculty)
			authed.DELETE("/remove_building/:id", buildingCtrl.DeleteBuilding)
			authed.DELETE("/remove_room/:id", roomCtrl.DeleteRoom)
			authed.DELETE("/remove_item/:id", itemCtrl.DeleteItem)
			authed.DELETE("/remove_student/:id", accountCtrl.DeleteStudent)
			authed.DELETE("/remove_admin/:id", accountCtrl.DeleteAdmin)

			authed.PUT("/edit_student/:id", accountCtrl.UpdateStudent)
			authed.PUT("/edit_admin/:id", accountCtrl.UpdateAdmin)

			authed.GET("/types", lookupCtrl.ListTypes)
			authed.POST("/types/create", lookupCtrl.CreateType)
			authed.DELETE("/types/delete/:id", lookupCtrl.DeleteType)
			authed.GET("/attributes", lookupCtrl.ListAttributes)
			authed.POST("/attributes/create", lookupCtrl.CreateAttribute)
			authed.DELETE("/attributes/delete/:id", lookupCtrl.DeleteAttribute)

			authed.GET("/ws/reservations", ws.ReservationFeedHandler(hub))
		}
	}
}
