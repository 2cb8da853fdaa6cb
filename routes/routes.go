package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/catsflow-servers/sistemakids/config"
	"github.com/catsflow-servers/sistemakids/handlers"
)

// Register amarra todas as rotas HTTP com o handle do banco injetado.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	auth := handlers.NewAuthHandler(db, cfg.JWTSecret)
	verify := handlers.NewVerifyHandler(db, cfg.JWTSecret)
	alunos := handlers.NewAlunoHandler(db)
	chamadas := handlers.NewChamadaHandler(db)
	material := handlers.NewMaterialHandler(db)
	conf := handlers.NewConfigHandler(db)
	stats := handlers.NewStatisticsHandler(db)

	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)

	a := e.Group("/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)
	a.POST("/logout", auth.Logout)
	a.GET("/gerenciar/usuarios", auth.List)
	a.GET("/view/:id", auth.View)
	a.PUT("/update/:id", auth.Update)
	a.DELETE("/delete/:id", auth.Delete)
	a.POST("/change/password/user", auth.ChangePasswordUser)
	a.POST("/change/password/admin", auth.ChangePasswordAdmin)
	// rotas deprecadas, mantidas pelos fronts antigos
	a.POST("/verify/token", verify.Token)
	a.POST("/verify/permission", verify.PermissionByToken)
	a.POST("/verify/profile", verify.ProfileByToken)

	v := e.Group("/verify")
	v.POST("/token", verify.Token)
	v.POST("/permission", verify.Permission)
	v.POST("/name", verify.Name)
	v.POST("/profile", verify.Profile)
	v.GET("/usuarios", verify.Usuarios)

	al := e.Group("/alunos")
	al.POST("/register", alunos.Register)
	al.GET("/search/:turma", alunos.Search)
	al.GET("/gerenciar/:id", alunos.View)
	al.PUT("/update/:id", alunos.Update)
	al.DELETE("/excluir/:id", alunos.Delete)

	ch := e.Group("/chamadas")
	ch.POST("/register/:turma", chamadas.Register)
	ch.GET("/gerenciar/:turma", chamadas.List)
	ch.GET("/gerenciar/:turma/:id", chamadas.View)
	ch.PUT("/update/:turma/:id", chamadas.Update)
	ch.DELETE("/excluir/:turma/:id", chamadas.Delete)
	ch.GET("/last/:turma", chamadas.Last)

	m := e.Group("/material")
	m.POST("/group/register", material.GroupRegister)
	m.GET("/group/search", material.GroupSearch)
	m.PUT("/group/toggle/:id", material.GroupToggle)
	m.DELETE("/group/delete/:id", material.GroupDelete)
	m.POST("/register", material.Register)
	m.GET("/search", material.Search)
	m.PUT("/toggle/:id", material.Toggle)
	m.DELETE("/delete/:id", material.Delete)

	cf := e.Group("/config")
	cf.GET("/view", conf.View)
	cf.PUT("/edit/:id", conf.Edit)

	st := e.Group("/statistics")
	st.GET("/alunos", stats.Alunos)
	st.GET("/chamada/:turma", stats.Chamada)
	st.GET("/presenca/:id", stats.Presenca)
	st.POST("/user", stats.User)
}
