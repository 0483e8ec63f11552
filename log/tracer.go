package log

import (
    log "github.com/sirupsen/logrus"
    "github.com/rifflock/lfshook"
)

// AddTracer mirrors trace and warn records of a logger into JSON files
// next to path. Tracing forces the logger down to trace level.
func AddTracer(logger *Logger, path string) {
    pathMap := lfshook.PathMap{
        log.TraceLevel: path + ".trace",
        log.WarnLevel: path + ".warn",
    }
    hook := lfshook.NewHook(
        pathMap,
        &log.JSONFormatter{
            TimestampFormat: "Jan _2 2006 15:04:05.000000",
        },
    )
    logger.Entry.Logger.Hooks.Add(hook)
    logger.Entry.Logger.SetLevel(log.TraceLevel)
}
