package service

import "fmt"

var (
	ErrCannotAnalyze = fmt.Errorf("cannot analyze log")
	ErrCannotPublish = fmt.Errorf("cannot publish report")
)
