package web

import (
	"context"
	"net/url"
	"strconv"

	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/middlewares/server/cors"
	"github.com/oarkflow/frame/middlewares/server/monitor"
	"github.com/oarkflow/frame/pkg/protocol/consts"
	"github.com/oarkflow/frame/pkg/route"
	"github.com/oarkflow/frame/server"
	"github.com/oarkflow/log"

	"github.com/oarkflow/rustem"
)

type StemController struct {
	stemmer *rustem.Stemmer
	index   *rustem.Index
}

func NewStemController(stemmer *rustem.Stemmer, index *rustem.Index) *StemController {
	if index == nil {
		index = rustem.NewIndex(stemmer)
	}
	return &StemController{stemmer: stemmer, index: index}
}

func (c *StemController) StemWord(_ context.Context, ctx *frame.Context) {
	word, err := url.PathUnescape(ctx.Param("word"))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, StemResult{Word: word, Stem: c.stemmer.Stem(word)})
}

func (c *StemController) StemWords(_ context.Context, ctx *frame.Context) {
	var req StemRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.validate(); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	stems := c.stemmer.StemTokens(req.Words)
	results := make([]StemResult, len(stems))
	for i, stem := range stems {
		results[i] = StemResult{Word: req.Words[i], Stem: stem}
	}
	Success(ctx, consts.StatusOK, results)
}

func (c *StemController) Tokenize(_ context.Context, ctx *frame.Context) {
	var req TextRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.validate(); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	frequencies, err := c.stemmer.TopFrequencies(req.Text, req.Top)
	if err != nil {
		log.Error().Err(err).Msg("Unable to tokenize text")
		Failed(ctx, consts.StatusInternalServerError, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, frequencies)
}

func (c *StemController) Index(_ context.Context, ctx *frame.Context) {
	var req TextRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.validate(); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	id, err := c.index.Insert(req.Text)
	if err != nil {
		log.Error().Err(err).Msg("Unable to index text")
		Failed(ctx, consts.StatusInternalServerError, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, map[string]any{"id": id, "total": c.index.Len()}, "Indexed")
}

func (c *StemController) Delete(_ context.Context, ctx *frame.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, "invalid id", nil)
		return
	}
	if !c.index.Delete(id) {
		Failed(ctx, consts.StatusNotFound, "document not found", nil)
		return
	}
	Success(ctx, consts.StatusOK, map[string]any{"id": id}, "Deleted")
}

func (c *StemController) Search(_ context.Context, ctx *frame.Context) {
	var query Query
	if err := ctx.Bind(&query); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := query.validate(); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	hits, err := c.index.Search(query.params())
	if err != nil {
		log.Error().Err(err).Msg("Unable to search")
		Failed(ctx, consts.StatusInternalServerError, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, map[string]any{"hits": hits, "count": len(hits), "total": c.index.Len()})
}

func (c *StemController) Suggest(_ context.Context, ctx *frame.Context) {
	prefix, err := url.PathUnescape(ctx.Param("prefix"))
	if err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	var req SuggestRequest
	if err := ctx.Bind(&req); err != nil {
		Failed(ctx, consts.StatusBadRequest, err.Error(), nil)
		return
	}
	Success(ctx, consts.StatusOK, c.index.Suggest(prefix, req.limit()))
}

func (c *StemController) Stats(_ context.Context, ctx *frame.Context) {
	Success(ctx, consts.StatusOK, c.stemmer.Stats())
}

func StemRoutes(route route.IRouter, c *StemController) route.IRouter {
	route.GET("/stem/:word", c.StemWord)
	route.POST("/stem", c.StemWords)
	route.POST("/tokenize", c.Tokenize)
	route.POST("/index", c.Index)
	route.DELETE("/index/:id", c.Delete)
	route.GET("/search", c.Search)
	route.POST("/search", c.Search)
	route.GET("/suggest/:prefix", c.Suggest)
	route.GET("/stats", c.Stats)
	return route
}

func StartServer(addr string, stemmer *rustem.Stemmer, index *rustem.Index, routePrefix ...string) {
	c := NewStemController(stemmer, index)
	prefix := "/"
	if len(routePrefix) > 0 {
		prefix = routePrefix[0]
	}
	srv := server.New(
		server.WithDisablePrintRoute(true),
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)
	srv.Use(cors.Default())
	srv.GET("/monitor", monitor.New())
	StemRoutes(srv.Group(prefix), c)
	log.Info().Str("addr", addr).Msg("Starting server...")
	srv.Spin()
}
