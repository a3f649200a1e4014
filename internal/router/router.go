package router

import (
	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/middleware"
	"workforce/backend/internal/pkg/events"
	"workforce/backend/internal/pkg/repository/postgresql"

	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/postgres/clientsite"
	"workforce/backend/internal/repository/postgres/job"
	"workforce/backend/internal/repository/postgres/payroll"
	"workforce/backend/internal/repository/postgres/schedule"
	"workforce/backend/internal/repository/postgres/user"

	attendance_controller "workforce/backend/internal/controller/http/v1/attendance"
	auth_controller "workforce/backend/internal/controller/http/v1/auth"
	clientsite_controller "workforce/backend/internal/controller/http/v1/clientsite"
	job_controller "workforce/backend/internal/controller/http/v1/job"
	payroll_controller "workforce/backend/internal/controller/http/v1/payroll"
	schedule_controller "workforce/backend/internal/controller/http/v1/schedule"
	user_controller "workforce/backend/internal/controller/http/v1/user"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB     *postgresql.Database
	redisDB        *redis.Client
	port           string
	auth           *auth.Auth
	privateKeyPath string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	privateKeyPath string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		privateKeyPath,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	publisher := events.NewPublisher(r.redisDB)

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	clientSitePostgres := clientsite.NewRepository(r.postgresDB)
	jobPostgres := job.NewRepository(r.postgresDB)
	schedulePostgres := schedule.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB, publisher)
	payrollPostgres := payroll.NewRepository(r.postgresDB, r.redisDB, publisher)

	// controller
	authController := auth_controller.NewController(userPostgres, r.privateKeyPath)
	userController := user_controller.NewController(userPostgres)
	clientSiteController := clientsite_controller.NewController(clientSitePostgres)
	jobController := job_controller.NewController(jobPostgres)
	scheduleController := schedule_controller.NewController(schedulePostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	payrollController := payroll_controller.NewController(payrollPostgres)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #user
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Get("/api/v1/user/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/user/create", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #client_site
	r.Get("/api/v1/client_site/list", clientSiteController.GetClientSiteList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Get("/api/v1/client_site/:id", clientSiteController.GetClientSiteDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/client_site/create", clientSiteController.CreateClientSite, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/client_site/:id", clientSiteController.UpdateClientSiteColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/client_site/:id", clientSiteController.DeleteClientSite, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #job
	r.Get("/api/v1/job/list", jobController.GetJobList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Get("/api/v1/job/settings", jobController.GetJobSettings, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Get("/api/v1/job/:id", jobController.GetJobDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/job/create", jobController.CreateJob, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/job/assign", jobController.AssignJob, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/job/:id", jobController.UpdateJobColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/job/:id", jobController.RetireJob, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #schedule
	r.Get("/api/v1/schedule/list", scheduleController.GetScheduleList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/schedule/:id", scheduleController.GetScheduleDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/schedule/create", scheduleController.CreateSchedule, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/schedule/mark-no-shows", scheduleController.MarkNoShows, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Delete("/api/v1/schedule/:id", scheduleController.CancelSchedule, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetAttendanceList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/attendance/clock-in", attendanceController.ClockIn, middleware.Authenticate(r.auth))
	r.Post("/api/v1/attendance/clock-out", attendanceController.ClockOut, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/attendance/:id/verify", attendanceController.VerifyAttendance, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))

	// #payroll
	r.Get("/api/v1/payroll/period/list", payrollController.GetPeriodList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/payroll/period/create", payrollController.CreatePeriod, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/payroll/period/:id/generate", payrollController.GeneratePeriod, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/payroll/period/:id/approve", payrollController.ApprovePeriod, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/payroll/period/:id/items", payrollController.GetItemList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/payroll/penalty/create", payrollController.CreatePenalty, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))
	r.Post("/api/v1/payroll/bonus/create", payrollController.CreateBonus, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleSupervisor))

	return r.Run(r.port)
}
