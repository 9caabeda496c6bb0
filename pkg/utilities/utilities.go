package utilities

import "zk-proving-service/pkg/logger"

func FailOnError(err error, msg string) {
	if err != nil {
		logger.Default().Panicf(err, "%s", msg)
	}
}

func Map[T any, U any](arr []T, fn func(T) U) []U {
	mapped := make([]U, len(arr))
	for i, x := range arr {
		mapped[i] = fn(x)
	}

	return mapped
}

func Ternary[T any](cond bool, evalTrue, evalFalse T) T {
	if cond {
		return evalTrue
	}
	return evalFalse
}
