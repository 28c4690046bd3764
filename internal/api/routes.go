package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	users := app.Group("/api/users")
	users.Post("/register", handler.Register)
	users.Post("/login", handler.Login)
	users.Get("/me", handler.AuthRequired, handler.Me)
	users.Get("", handler.AuthRequired, handler.ListUsers)
	users.Put("/:id", handler.AuthRequired, handler.UpdateUser)

	activities := app.Group("/api/activities")
	activities.Get("", handler.ListActivities)
	activities.Post("", handler.AuthRequired, handler.CreateActivity)

	workouts := app.Group("/api/workouts", handler.AuthRequired)
	workouts.Get("", handler.ListMyWorkouts)
	workouts.Get("/all", handler.ListAllWorkouts)
	workouts.Get("/user/:userid", handler.ListUserWorkouts)
	workouts.Post("", handler.SubmitWorkout)
	workouts.Post("/:activityid", handler.SubmitWorkoutForActivity)
	workouts.Put("/:id", handler.UpdateWorkoutInstance)
	workouts.Delete("/:id", handler.DeleteWorkout)
}
