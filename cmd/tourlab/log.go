package main

import (
	"log"
	"os"
)

// Leveled logging: 1 = errors only, 2 = info (default), 3 = debug.
var (
	logDebug *log.Logger
	logInfo  *log.Logger
	logErr   *log.Logger
	maxLvl   int
)

func initLoggers(logLvl int) {
	maxLvl = logLvl
	logDebug = log.New(os.Stdout, "DEBUG ", log.Ldate|log.Ltime)
	logInfo = log.New(os.Stdout, "INFO ", log.Ldate|log.Ltime)
	logErr = log.New(os.Stderr, "ERROR ", log.Ldate|log.Ltime)
}

func logf(msgLvl int, format string, args ...interface{}) {
	if msgLvl > maxLvl {
		return
	}
	switch msgLvl {
	case 1:
		logErr.Printf(format, args...)
	case 2:
		logInfo.Printf(format, args...)
	case 3:
		logDebug.Printf(format, args...)
	}
}
