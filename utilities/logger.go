package utilities

import (
	"log"
	"os"
	"time"
)

// The loggers are usable from the zero state; InitLogger only adjusts
// the default logger's flags.
var (
	InfoLogger  = log.New(os.Stdout, "\033[32m[INFO]\033[0m ", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "\033[31m[ERROR]\033[0m ", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLogger = log.New(os.Stdout, "\033[36m[DEBUG]\033[0m ", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
)

// InitLogger aligns the default logger's flags with the package loggers.
func InitLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
}

// LogRequest records one handled HTTP request.
func LogRequest(requestID, method, path, remoteAddr string, status int, duration time.Duration) {
	InfoLogger.Printf("[%s] %s %s %s %d %v", requestID, method, path, remoteAddr, status, duration)
}

// LogError records an error with its context.
func LogError(err error, context string) {
	ErrorLogger.Printf("%s: %v", context, err)
}

// LogDebug records debug information.
func LogDebug(format string, v ...interface{}) {
	DebugLogger.Printf(format, v...)
}

// LogInfo records general information.
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}
