package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/workers"
)

const (
	defaultTimeout        = 30
	defaultAddress        = ":9090"
	defaultRedisDB        = 0
	defaultAccessTTLMin   = 15
	defaultRefreshTTLHour = 24 * 7
	defaultAuthRateLimit  = 10
	tokenPurgeInterval    = time.Hour
	dbMaxRetry            = 10
	dbRetryIntervalSec    = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare redis, used by the auth-endpoint rate limiter
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")
	redisPass := os.Getenv("REDIS_PASS")
	redisDBStr := os.Getenv("REDIS_DB")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		log.Println("failed to parse redis DB, using default")
		redisDB = defaultRedisDB
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisHost + ":" + redisPort,
		Password: redisPass,
		DB:       redisDB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Fatal("got error when closing the redis connection", err)
		}
	}()

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		log.Printf("redis unreachable, rate limiting will fail open: %v", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	idGen := uuid.NewString
	clock := time.Now

	threadRepo := mysqlRepo.NewThreadRepository(db, idGen, clock)
	commentRepo := mysqlRepo.NewCommentRepository(db, idGen, clock)
	replyRepo := mysqlRepo.NewReplyRepository(db, idGen, clock)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db, idGen, clock)
	userRepo := mysqlRepo.NewUserRepository(db, idGen, clock)
	authRepo := mysqlRepo.NewAuthenticationRepository(db, clock)

	// Build service Layer
	tokens := auth.New([]byte(os.Getenv("JWT_SECRET")))
	accessTTLMin, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MINUTES"))
	if err != nil {
		log.Println("failed to parse access token TTL, using default 15 minutes")
		accessTTLMin = defaultAccessTTLMin
	}
	refreshTTLHour, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_HOURS"))
	if err != nil {
		log.Println("failed to parse refresh token TTL, using default 7 days")
		refreshTTLHour = defaultRefreshTTLHour
	}

	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo)
	commentSvc := comment.NewService(threadRepo, commentRepo, likeRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	userSvc := user.NewService(userRepo, authRepo, tokens,
		time.Duration(accessTTLMin)*time.Minute,
		time.Duration(refreshTTLHour)*time.Hour,
		clock)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.Auth(tokens)
	authRateLimit := middleware.RateLimit(redisClient, defaultAuthRateLimit, time.Minute)

	// Register routes
	route.POST("/users", authRateLimit, userHandler.Register)
	route.POST("/authentications", authRateLimit, userHandler.Login)
	route.PUT("/authentications", userHandler.Refresh)
	route.DELETE("/authentications", userHandler.Logout)

	route.GET("/threads/:id", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:id/comments", commentHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId", commentHandler.Delete)
		authorized.PUT("/threads/:id/comments/:commentId/likes", commentHandler.Like)
		authorized.POST("/threads/:id/comments/:commentId/replies", replyHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId/replies/:replyId", replyHandler.Delete)
	}

	// Start Server and workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		purger := workers.NewPurgeTokensWorker(authRepo, tokenPurgeInterval, clock)
		purger.Start(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server error: ", err)
	}

	log.Println("Server exiting")
}
