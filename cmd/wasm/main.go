//go:build js && wasm

package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"topwords/internal/adapter/analyzer"
	"topwords/internal/usecase"
)

var ranker *usecase.FrequencyUseCase

func init() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ranker = usecase.NewFrequencyUseCase(analyzer.NewTokenizer(), analyzer.DefaultStopWords(), logger)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("topwordsRank", js.FuncOf(rankText))
	js.Global().Set("topwordsStem", js.FuncOf(activateStemmer))
	js.Global().Set("topwordsUnstem", js.FuncOf(deactivateStemmer))
	js.Global().Set("topwordsStatus", js.FuncOf(getStatus))

	<-c
}

func rankText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: topwordsRank(text, [k])")
	}

	if args[0].Type() != js.TypeString {
		return makeError("text must be a string")
	}
	text := args[0].String()
	k := 10
	if len(args) > 1 && !args[1].IsUndefined() {
		if args[1].Type() != js.TypeNumber {
			return makeError("k must be a number")
		}
		k = args[1].Int()
	}

	words, err := ranker.MostFrequentCounts(text, k)
	if err != nil {
		return makeError(err.Error())
	}

	return makeResult(map[string]interface{}{
		"words":    words,
		"stemming": ranker.StemmerLanguage(),
	})
}

func activateStemmer(this js.Value, args []js.Value) interface{} {
	language := "english"
	if len(args) > 0 {
		language = args[0].String()
	}

	ranker.ActivateStemmer(language)
	return getStatus(this, nil)
}

func deactivateStemmer(this js.Value, args []js.Value) interface{} {
	ranker.DeactivateStemmer()
	return getStatus(this, nil)
}

func getStatus(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"stemmerActive": ranker.StemmerActive(),
		"language":      ranker.StemmerLanguage(),
		"languages":     analyzer.Languages(),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
