// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"strings"

	"github.com/janpfeifer/draughtsGo/internal/ai"
	"github.com/janpfeifer/draughtsGo/internal/generics"
	"github.com/janpfeifer/draughtsGo/internal/parameters"
	. "github.com/janpfeifer/draughtsGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen for board.NextPlayer and its score. found is false only if
	// there are no legal moves. The board is restored before returning.
	Play(board *Board) (move Move, score ai.Score, found bool)

	// Stop interrupts a Play in progress, which then returns as soon as possible with a legal
	// move. It can be called from any goroutine.
	Stop()

	// Finalize is called at the end of a match.
	Finalize()

	// String describes the player, for logging.
	String() string
}

// Module creates players. NewPlayer is called at the start of a match.
// matchName is used for logging and debugging. The module must pop from params the parameters
// it uses: leftovers are reported as unknown.
type Module interface {
	NewPlayer(matchName string, playerNum PlayerNum, params parameters.Params) (Player, error)
}

var (
	// Registered modules, by name.
	nameToModule = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends to play draughts.
func RegisterModule(name string, module Module) {
	if _, found := nameToModule[name]; found {
		klog.Warningf("player module %q registered more than once, the last one is used", name)
	}
	nameToModule[name] = module
}

// ModuleNames returns the names of the registered modules, sorted.
func ModuleNames() (names []string) {
	for name := range generics.SortedKeys(nameToModule) {
		names = append(names, name)
	}
	return
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "heuristic:ab,max_depth=4"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the module name followed by a colon (":"), followed by a comma-separated list of optional
//		parameters with optional values associated, e.g. "heuristic:ab,max_depth=6,w_tempi=2".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(matchName string, playerNum PlayerNum, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	moduleName, paramsConfig, _ := strings.Cut(config, ":")
	moduleName = strings.TrimSpace(moduleName)
	if len(nameToModule) == 0 {
		return nil, errors.New("no registered player modules. Perhaps you need to import _ \"github.com/janpfeifer/draughtsGo/internal/players/default\" to your binary ?")
	}
	module, ok := nameToModule[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown AI player %q, valid values are: %s", moduleName, strings.Join(ModuleNames(), ", "))
	}

	params := parameters.NewFromConfigString(paramsConfig)
	player, err := module.NewPlayer(matchName, playerNum, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", config)
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", config)
	}
	klog.V(1).Infof("%s: %s plays with %s", matchName, playerNum, player)
	return player, nil
}
