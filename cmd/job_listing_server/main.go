package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"job_listing/internal/core"
	"job_listing/internal/listing_server"
)

func main() {
	// обработка возможной паники
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("Поймали панику:", r)
		}
	}()

	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	// Создаем корневой контекст
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем общие зависимости
	deps, err := core.InitDependencies(ctx, *envPath)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	// Создаем HTTP-сервер
	server, err := listing_server.NewListingServer(ctx, deps.Config.ServerConf, deps.ListingHandler, deps.Log)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// создаём канал, который будет реагировать на системные сигналы
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Запуск сервера
	go func() {
		fmt.Printf("🚀 HTTP сервер списка вакансий запускается на %s (источник: %s)\n", deps.Config.ServerConf.Addr(), deps.Source.Name())
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Ожидание сигнала
	<-sigChan
	fmt.Println("\n🛑 Остановка сервера списка вакансий...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, deps.Config.ServerConf.ShutdownTimeout)
	defer shutdownCancel()

	// Остановка сервера
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Остановка сервисов: кэш, источник, соединения с redis
	server.Handler.ShutDown(shutdownCtx)

	fmt.Println("👋 Сервер списка вакансий остановлен")
}
