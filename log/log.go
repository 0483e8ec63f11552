package log

import (
    log "github.com/sirupsen/logrus"
    "os"
)

type Logger struct {
    *log.Entry
}

func NewLogger(module string) *Logger {
    base := log.New()
    base.SetFormatter(&log.TextFormatter{
        DisableColors: false,
        DisableTimestamp: false,
    })
    base.SetOutput(os.Stdout)
    base.SetLevel(log.WarnLevel)
    entry := base.WithFields(
        log.Fields{
            "name": module,
        })
    return &Logger{entry}
}

func (self *Logger) SetLevel(level log.Level) {
    self.Entry.Logger.SetLevel(level)
}
