package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gopkg.in/natefinch/lumberjack.v2"

	"travel-booking-service/amadeus"
	"travel-booking-service/config"
	error2 "travel-booking-service/error"
	"travel-booking-service/handlers"
	"travel-booking-service/middleware"
	"travel-booking-service/routes"
	"travel-booking-service/services"
	"travel-booking-service/utils"
)

var (
	server      *gin.Engine
	ctx         context.Context
	mongoclient *mongo.Client
	cfg         config.Config
	logger      *logrus.Logger
	metrics     *middleware.Metrics

	travelService  services.TravelService
	bookingService services.BookingService
	paymentService services.PaymentService

	TravelHandler       handlers.TravelHandler
	BookingHandler      handlers.BookingHandler
	PaymentHandler      handlers.PaymentHandler
	TravelRouteHandler  routes.TravelRouteHandler
	BookingRouteHandler routes.BookingRouteHandler
	PaymentRouteHandler routes.PaymentRouteHandler
)

func init() {
	ctx = context.TODO()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}
	cfg = config.LoadConfig()

	logger = logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if cfg.LogFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:  cfg.LogFile,
			MaxSize:   10,
			LocalTime: true,
		})
	}

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, mongoconn)
	if err != nil {
		panic(err)
	}
	mongoclient = client

	if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
		logger.WithField("error", err.Error()).
			Warn("MongoDB not reachable, bookings will fail until it is")
	} else {
		logger.Info("MongoDB successfully connected...")
	}

	if cfg.JaegerAddress != "" {
		if _, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress); err != nil {
			logger.Fatalf("JaegerTraceProvider failed to initialize. Error: %s", err)
		}
	}
	tracer := otel.Tracer(cfg.ServiceName)

	var cache services.Cache = services.NewNoOpCache()
	if cfg.RedisURL != "" {
		redisCache, err := services.NewRedisCache(cfg.RedisURL, 5*time.Minute)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("Redis not reachable, search caching disabled")
		} else {
			cache = redisCache
		}
	}

	amadeusClient := amadeus.NewClient(cfg, logger)
	if !amadeusClient.Configured() {
		logger.Info("Amadeus API keys not configured. Using mock data for travel search.")
	}

	database := mongoclient.Database("travel-booking")
	bookingCollection := database.Collection("bookings")
	paymentCollection := database.Collection("payments")

	mailer := utils.NewMailer(cfg)

	travelService = services.NewTravelServiceImpl(amadeusClient, cache, tracer, logger)
	bookingService = services.NewBookingServiceImpl(bookingCollection, services.NewDefaultPromoPolicy(), tracer)
	paymentService = services.NewPaymentServiceImpl(paymentCollection, bookingCollection, tracer)

	TravelHandler = handlers.NewTravelHandler(travelService, tracer, logger)
	BookingHandler = handlers.NewBookingHandler(bookingService, mailer, tracer, logger)
	PaymentHandler = handlers.NewPaymentHandler(paymentService, tracer, logger)
	TravelRouteHandler = routes.NewTravelRouteHandler(TravelHandler)
	BookingRouteHandler = routes.NewBookingRouteHandler(BookingHandler)
	PaymentRouteHandler = routes.NewPaymentRouteHandler(PaymentHandler)

	metrics = middleware.NewMetrics(prometheus.NewRegistry())

	server = gin.New()
	server.Use(gin.Logger())
	server.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		logger.WithField("panic", fmt.Sprintf("%v", err)).Error("Recovered from panic")
		error2.ReturnJSONError(c, http.StatusInternalServerError, "Internal server error")
	}))
}

func main() {
	defer mongoclient.Disconnect(ctx)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true

	server.Use(cors.New(corsConfig))
	server.Use(middleware.MetricsMiddleware(metrics))

	router := server.Group("/api")
	router.GET("/health", healthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	TravelRouteHandler.TravelRoute(router)
	BookingRouteHandler.BookingRoute(router)
	PaymentRouteHandler.PaymentRoute(router)

	server.NoRoute(func(c *gin.Context) {
		error2.ReturnJSONError(c, http.StatusNotFound, "Route not found")
	})

	logger.Infof("Server is running on port %s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}

func healthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "connected"
	if err := mongoclient.Ping(pingCtx, readpref.Primary()); err != nil {
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Server is running successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
