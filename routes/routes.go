package routes

import (
	"net/http"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/controllers"
	"github.com/ChristianMoraLopez/nutriplanbackend/middlewares"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every controller onto a gin engine. The uploader and
// verifier may be nil when their backing services are not configured; the
// affected routes then answer 503.
func SetupRouter(db *gorm.DB, cfg *config.Settings, uploader *utils.S3Uploader, verifier services.TokenVerifier) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	usuarioSvc := services.NewUsuarioService(db)
	categoriaSvc := services.NewCategoriaService(db)
	metodoSvc := services.NewMetodoService(db)
	comidaSvc := services.NewComidaService(db)
	tipoComidaSvc := services.NewTipoComidaService(db)
	ingredienteSvc := services.NewIngredienteService(db)
	recetaSvc := services.NewRecetaService(db)
	recetaIngSvc := services.NewRecetaIngredienteService(db)
	guardadaSvc := services.NewRecetaGuardadaService(db)
	objetivoSvc := services.NewObjetivoService(db)
	menuSvc := services.NewMenuService(db)
	seleccionSvc := services.NewSeleccionService(db)

	authCtrl := controllers.NewAuthController(usuarioSvc, verifier, cfg.JWT)
	usuarioCtrl := controllers.NewUsuarioController(usuarioSvc)
	ingredienteCtrl := controllers.NewIngredienteController(ingredienteSvc, uploader)
	recetaCtrl := controllers.NewRecetaController(recetaSvc, recetaIngSvc)
	guardadaCtrl := controllers.NewRecetaGuardadaController(guardadaSvc)
	objetivoCtrl := controllers.NewObjetivoController(objetivoSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, seleccionSvc)

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API de NutriPlan - Sistema de Planificación Nutricional")
	})
	r.POST("/registro", authCtrl.Registro)
	r.POST("/login", authCtrl.Login)
	r.POST("/login/google", authCtrl.LoginGoogle)

	// Unauthenticated read-only mirror of the catalogs
	public := r.Group("/public")
	{
		controllers.RegisterReadOnly(public.Group("/categorias"), "categoría", categoriaSvc)
		controllers.RegisterReadOnly(public.Group("/metodos"), "método de preparación", metodoSvc)
		controllers.RegisterReadOnly(public.Group("/comidas"), "comida", comidaSvc)
		controllers.RegisterReadOnly(public.Group("/tipos_comida"), "tipo de comida", tipoComidaSvc)
		controllers.RegisterReadOnly(public.Group("/objetivos"), "objetivo", objetivoSvc)

		ingredientes := public.Group("/ingredientes")
		controllers.RegisterReadOnly(ingredientes, "ingrediente", ingredienteSvc)
		ingredientes.GET("/search", ingredienteCtrl.Search)
		ingredientes.GET("/categoria/:categoriaId", ingredienteCtrl.PorCategoria)

		recetas := public.Group("/recetas")
		controllers.RegisterReadOnly(recetas, "receta", recetaSvc)
		recetas.GET("/paginated", recetaCtrl.ListPaginated)
		recetas.GET("/tipo/:tipoComidaId", recetaCtrl.PorTipoComida)
		recetas.GET("/:id/ingredientes", recetaCtrl.ListIngredientes)
	}

	// Everything below requires a valid session token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(cfg.JWT))
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", usuarioCtrl.List)
			usuarios.GET("/paginated", usuarioCtrl.ListPaginated)
			usuarios.GET("/:id", usuarioCtrl.Get)
			usuarios.PUT("/:id", usuarioCtrl.Update)
			usuarios.DELETE("/:id", usuarioCtrl.Delete)
		}

		controllers.RegisterCrud(api.Group("/categorias"), "categoría", categoriaSvc)
		controllers.RegisterCrud(api.Group("/metodos"), "método de preparación", metodoSvc)
		controllers.RegisterCrud(api.Group("/comidas"), "comida", comidaSvc)
		controllers.RegisterCrud(api.Group("/tipos_comida"), "tipo de comida", tipoComidaSvc)

		ingredientes := api.Group("/ingredientes")
		controllers.RegisterCrud(ingredientes, "ingrediente", ingredienteSvc)
		{
			ingredientes.GET("/search", ingredienteCtrl.Search)
			ingredientes.GET("/categoria/:categoriaId", ingredienteCtrl.PorCategoria)
			ingredientes.POST("/:id/foto", ingredienteCtrl.UploadFoto)
		}

		recetas := api.Group("/recetas")
		controllers.RegisterCrud(recetas, "receta", recetaSvc)
		{
			recetas.GET("/paginated", recetaCtrl.ListPaginated)
			recetas.GET("/tipo/:tipoComidaId", recetaCtrl.PorTipoComida)
			recetas.GET("/:id/ingredientes", recetaCtrl.ListIngredientes)
			recetas.POST("/:id/ingredientes", recetaCtrl.AddIngrediente)
			recetas.GET("/:id/ingredientes/:ingredienteId", recetaCtrl.GetIngrediente)
			recetas.PUT("/:id/ingredientes/:ingredienteId", recetaCtrl.UpdateIngrediente)
			recetas.DELETE("/:id/ingredientes/:ingredienteId", recetaCtrl.RemoveIngrediente)
		}

		guardadas := api.Group("/recetas_guardadas")
		{
			guardadas.GET("", guardadaCtrl.List)
			guardadas.GET("/:id", guardadaCtrl.Get)
			guardadas.POST("", guardadaCtrl.Create)
			guardadas.PUT("/:id", guardadaCtrl.Update)
			guardadas.DELETE("/:id", guardadaCtrl.Delete)
		}

		objetivos := api.Group("/objetivos")
		{
			objetivos.GET("", objetivoCtrl.List)
			objetivos.GET("/:id", objetivoCtrl.Get)
			objetivos.POST("", objetivoCtrl.Create)
			objetivos.PUT("/:id", objetivoCtrl.Update)
			objetivos.DELETE("/:id", objetivoCtrl.Delete)
		}

		menus := api.Group("/menus")
		{
			menus.GET("", menuCtrl.List)
			menus.GET("/objetivo/:objetivoId", menuCtrl.PorObjetivo)
			menus.GET("/:id", menuCtrl.Get)
			menus.POST("", menuCtrl.Create)
			menus.PUT("/:id", menuCtrl.Update)
			menus.DELETE("/:id", menuCtrl.Delete)
			menus.GET("/:id/ingredientes", menuCtrl.ListSelecciones)
			menus.POST("/:id/ingredientes", menuCtrl.AddSeleccion)
			menus.PUT("/:id/ingredientes/:seleccionId", menuCtrl.UpdateSeleccion)
			menus.DELETE("/:id/ingredientes/:seleccionId", menuCtrl.RemoveSeleccion)
		}
	}

	return r
}
