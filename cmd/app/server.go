package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"clean/internal/api/controllers"
	"clean/internal/config"
	"clean/internal/models/db_models"
	"clean/pkg/middleware"
	"clean/pkg/utils"
)

const readHeaderTimeout = 10 * time.Second

type Controllers struct {
	fx.In

	Account    *controllers.AccountController
	Survey     *controllers.SurveyController
	Cosmetic   *controllers.CosmeticController
	Ingredient *controllers.IngredientController
	Review     *controllers.ReviewController
	Favorite   *controllers.FavoriteController
	CarePlan   *controllers.CarePlanController
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg config.Config, log *zap.Logger, issuer *utils.TokenIssuer, ctrl Controllers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, issuer, ctrl)

	return r
}

func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, ctrl Controllers) {
	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	api := r.Group("/api")
	api.POST("/users/", ctrl.Account.Register)
	api.POST("/token/", ctrl.Account.Login)
	api.POST("/token/refresh/", ctrl.Account.Refresh)

	api.GET("/survey/questions/", ctrl.Survey.Questions)
	api.POST("/survey/classify/", ctrl.Survey.Classify)

	api.GET("/cosmetics/", ctrl.Cosmetic.Search)
	api.GET("/cosmetics/:barcode/", ctrl.Cosmetic.Get)
	api.GET("/cosmetics/:barcode/composition/", ctrl.Cosmetic.Composition)
	api.GET("/cosmetics/:barcode/clean_score/", ctrl.Cosmetic.CleanScore)
	api.GET("/cosmetics/:barcode/summary/", ctrl.Cosmetic.Summary)
	api.GET("/cosmetics/:barcode/reviews/", ctrl.Review.ListReviews)
	api.GET("/cosmetics/:barcode/expert_opinions/", ctrl.Review.ListExpertOpinions)

	api.GET("/ingredients/", ctrl.Ingredient.Search)
	api.GET("/ingredients/:id/", ctrl.Ingredient.Get)
	api.GET("/ingredients/:id/similar/", ctrl.Ingredient.Similar)

	authed := api.Group("", middleware.JWTAuthMiddleware(issuer))
	authed.GET("/users/me/", ctrl.Account.Me)
	authed.PATCH("/users/update_skin_profile/", ctrl.Account.UpdateSkinProfile)
	authed.POST("/survey/submit/", ctrl.Survey.Submit)
	authed.POST("/cosmetics/", ctrl.Cosmetic.Create)
	authed.POST("/cosmetics/:barcode/reviews/", ctrl.Review.AddReview)

	authed.GET("/favorite_products/", ctrl.Favorite.List)
	authed.POST("/favorite_products/", ctrl.Favorite.Add)
	authed.DELETE("/favorite_products/:barcode/", ctrl.Favorite.Remove)

	authed.GET("/care_plans/", ctrl.CarePlan.List)
	authed.POST("/care_plans/", ctrl.CarePlan.Create)
	authed.POST("/care_plans/:id/contents/", ctrl.CarePlan.AddContent)
	authed.POST("/care_plans/:id/ratings/", ctrl.CarePlan.Rate)

	experts := authed.Group("", middleware.RoleMiddleware(db_models.RoleExpert, db_models.RoleAdmin))
	experts.POST("/cosmetics/:barcode/expert_opinions/", ctrl.Review.AddExpertOpinion)

	admin := authed.Group("", middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.PUT("/cosmetics/:barcode/", ctrl.Cosmetic.Update)
	admin.DELETE("/cosmetics/:barcode/", ctrl.Cosmetic.Delete)
	admin.PATCH("/cosmetics/:barcode/verify/", ctrl.Cosmetic.Verify)
	admin.DELETE("/cosmetics/:barcode/composition/", ctrl.Cosmetic.ClearComposition)
	admin.POST("/cosmetic_compositions/", ctrl.Cosmetic.AddComposition)
	admin.PATCH("/ingredients/:id/", ctrl.Ingredient.Curate)
	admin.POST("/import_cosing/", ctrl.Ingredient.ImportCosing)
}
