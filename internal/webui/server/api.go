package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/gin-gonic/gin"

	"gconsole/internal/console"
	appver "gconsole/internal/version"
)

// maxBody bounds uploaded scripts and expected-output files.
const maxBody = 4 << 20

type status struct {
	Title        string `json:"title"`
	PromptActive bool   `json:"prompt_active"`
	Shutdown     bool   `json:"shutdown"`
	EOF          bool   `json:"eof"`
	Locked       bool   `json:"locked"`
	Echo         bool   `json:"echo"`
	ScriptQueue  int    `json:"script_queue"`
	History      int    `json:"history"`
	Font         string `json:"font"`
}

type inputReq struct {
	Line string `json:"line"`
}

type compareResp struct {
	Match bool   `json:"match"`
	Diff  string `json:"diff,omitempty"`
}

func mountAPIGin(r *gin.Engine, con *console.Console) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, status{
			Title:        con.Title(),
			PromptActive: con.PromptActive(),
			Shutdown:     con.IsShutdown(),
			EOF:          con.EOF(),
			Locked:       con.Locked(),
			Echo:         con.Echo(),
			ScriptQueue:  con.ScriptQueueLen(),
			History:      len(con.History()),
			Font:         con.Font().String(),
		})
	})
	api.GET("/output", func(c *gin.Context) {
		c.String(http.StatusOK, con.AllOutput())
	})

	// Script: the request body, one line per input line
	api.POST("/script", func(c *gin.Context) {
		body, err := readBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, errJSON(err))
			return
		}
		lines := splitLines(body)
		con.LoadInputScript(lines)
		c.JSON(http.StatusOK, gin.H{"lines": len(lines)})
	})

	// Input: one line, as if typed and committed
	api.POST("/input", func(c *gin.Context) {
		var req inputReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errJSON(err))
			return
		}
		if con.IsShutdown() {
			c.JSON(http.StatusConflict, gin.H{"error": "console is shut down"})
			return
		}
		con.SendPaste(strings.TrimRight(req.Line, "\r\n") + "\n")
		c.Status(http.StatusAccepted)
	})

	api.POST("/eof", func(c *gin.Context) {
		con.SetEOF()
		c.Status(http.StatusNoContent)
	})

	// Compare: the request body is the expected output
	api.POST("/compare", func(c *gin.Context) {
		body, err := readBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, errJSON(err))
			return
		}
		actual := con.AllOutput()
		if body == actual {
			c.JSON(http.StatusOK, compareResp{Match: true})
			return
		}
		c.JSON(http.StatusOK, compareResp{Diff: udiff.Unified("expected output", "console output", body, actual)})
	})
}

func readBody(c *gin.Context) (string, error) {
	b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBody))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func errJSON(err error) gin.H { return gin.H{"error": err.Error()} }
