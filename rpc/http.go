package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/dimfeld/httptreemux"
	"github.com/unrolled/render"
)

type R struct {
	custom *config.Custom
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom) *httptreemux.TreeMux {
	router, impl := httptreemux.New(), &R{custom: custom}
	router.POST("/", impl.handle)
	registerHanders(router)
	return router
}

func registerHanders(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		err := fmt.Errorf("%v\n%s", rcv, debug.Stack())
		logger.Errorf("RPC PANIC %s", err.Error())
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.RequestMaximumSize))
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Verbosef("RPC CALL %s %v", call.Method, call.Params)

	var data interface{}
	var err error
	switch call.Method {
	case "add", "sub", "mul", "div":
		data, err = arithmetic(call.Method, call.Params)
	case "neg":
		data, err = negate(call.Params)
	case "cmp":
		data, err = compare(call.Params)
	case "equal":
		data, err = equal(call.Params)
	case "format":
		data, err = format(call.Params)
	case "parse":
		data, err = parse(call.Params)
	case "hash":
		data, err = hash(call.Params)
	case "decimal":
		data, err = toDecimal(impl.custom, call.Params)
	case "fromdecimal":
		data, err = fromDecimal(call.Params)
	default:
		err = fmt.Errorf("invalid method %s", call.Method)
	}
	if err != nil {
		logger.Debugf("RPC ERROR %s %v %s", call.Method, call.Params, err.Error())
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Debugf("RPC DATA %s %v %v", call.Method, call.Params, data)
	render.New().JSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,POST")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}
