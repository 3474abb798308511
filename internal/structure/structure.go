package structure

import (
	"fmt"
	"strings"

	"labgen/internal/safety"
)

// Kind — вид записи: каталог или файл.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

// Entry — одна запись структуры: относительный путь (прямые слэши),
// вид и, для файлов, начальное содержимое. Пустой Content — пустой файл.
type Entry struct {
	Path    string
	Kind    Kind
	Content string
}

// IsDir сообщает, описывает ли запись каталог.
func (e Entry) IsDir() bool { return e.Kind == KindDir }

// Parse превращает список строк в записи.
// Соглашение: строка с завершающим "/" — каталог, без него — файл.
// Любая некорректная строка — ошибка с её номером: список задаётся
// в коде, так что это ошибка программиста, а не пользователя.
func Parse(list []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(list))
	for i, s := range list {
		kind := KindFile
		rel := s
		if strings.HasSuffix(s, "/") {
			kind = KindDir
			rel = strings.TrimSuffix(s, "/")
		}
		if err := safety.ValidateRel(rel); err != nil {
			return nil, fmt.Errorf("запись %d (%q): %w", i, s, err)
		}
		entries = append(entries, Entry{Path: rel, Kind: kind})
	}
	return entries, nil
}

// MustParse — как Parse, но с паникой. Только для встроенных списков.
func MustParse(list []string) []Entry {
	entries, err := Parse(list)
	if err != nil {
		panic(fmt.Sprintf("structure: встроенный список некорректен: %v", err))
	}
	return entries
}

// Default возвращает встроенную структуру исследовательского проекта.
// Результат можно менять: каждый вызов отдаёт свежую копию.
func Default() []Entry {
	entries := MustParse(defaultList)
	for i := range entries {
		if c, ok := seeds[entries[i].Path]; ok {
			entries[i].Content = c
		}
	}
	return entries
}

// defaultList — скелет проекта автоматического исследователя.
// Завершающий "/" помечает каталог.
var defaultList = []string{
	"README.md",
	"requirements.txt",
	"configs/config.yaml",
	"data/knowledge_base/",
	"data/experimental_data/",
	"data/experiments/",
	"data/experiment_runs/",
	"data/latex/template.tex",
	"data/latex/references.bib",
	"data/papers/",
	"data/fewshot_examples/132_automated_relational.pdf",
	"data/fewshot_examples/attention.pdf",
	"data/fewshot_examples/2_carpe_diem.pdf",
	"data/fewshot_examples/132_automated_relational.json",
	"data/fewshot_examples/attention.json",
	"data/fewshot_examples/2_carpe_diem.json",
	"data/fewshot_examples/paper1.pdf",
	"data/fewshot_examples/paper1_review.json",
	"src/__init__.py",
	"src/main.py",
	"src/agents/__init__.py",
	"src/agents/constants.py",
	"src/agents/adaptive_orchestration_agent.py",
	"src/agents/user_interaction_agent.py",
	"src/agents/idea_generation_agent.py",
	"src/agents/idea_reflection_agent.py",
	"src/agents/knowledge_management_agent.py",
	"src/agents/novelty_evaluation_agent.py",
	"src/agents/experiment_planning_agent.py",
	"src/agents/experiment_design_agent.py",
	"src/agents/experiment_execution_agent.py",
	"src/agents/data_analysis_agent.py",
	"src/agents/plotting_agent.py",
	"src/agents/documentation_agent.py",
	"src/agents/reporting_agent.py",
	"src/agents/citation_management_agent.py",
	"src/agents/error_checking_agent.py",
	"src/agents/document_compilation_agent.py",
	"src/agents/peer_review_simulation_agent.py",
	"src/agents/review_generation_agent.py",
	"src/agents/review_reflection_agent.py",
	"src/agents/meta_review_agent.py",
	"src/agents/improvement_agent.py",
	"src/agents/resource_management_agent.py",
	"src/models/__init__.py",
	"src/models/llm_provider.py",
	"src/prompts/__init__.py",
	"src/prompts/idea_generation/generation_prompt.txt",
	"src/prompts/idea_generation/reflection_prompt.txt",
	"src/prompts/novelty_evaluation/prompt.txt",
	"src/prompts/novelty_evaluation/system_message.txt",
	"src/prompts/experiment_design/design_prompt.txt",
	"src/prompts/experiment_design/coder_prompt.txt",
	"src/prompts/experiment_execution/failure_prompt.txt",
	"src/prompts/experiment_execution/completion_prompt.txt",
	"src/prompts/experiment_execution/timeout_prompt.txt",
	"src/prompts/experiment_execution/plotting_prompt.txt",
	"src/prompts/experiment_execution/notes_prompt.txt",
	"src/prompts/data_analysis/data_analysis_prompt.txt",
	"src/prompts/reporting/abstract_prompt.txt",
	"src/prompts/reporting/section_prompt.txt",
	"src/prompts/reporting/refinement_prompt.txt",
	"src/prompts/reporting/second_refinement_prompt.txt",
	"src/prompts/reporting/second_refinement_loop_prompt.txt",
	"src/prompts/reporting/per_section_tips.txt",
	"src/prompts/reporting/common_errors.txt",
	"src/prompts/review_generation/generation_prompt.txt",
	"src/prompts/review_generation/system_prompt_base.txt",
	"src/prompts/review_generation/system_prompt_neg.txt",
	"src/prompts/review_generation/system_prompt_pos.txt",
	"src/prompts/review_generation/reflection_prompt.txt",
	"src/prompts/review_generation/meta_system_prompt.txt",
	"src/prompts/review_generation/improvement_prompt.txt",
	"src/prompts/citation_management/system_message.txt",
	"src/prompts/citation_management/first_prompt.txt",
	"src/prompts/citation_management/second_prompt.txt",
	"src/prompts/citation_management/aider_prompt_format.txt",
	"src/prompts/misc/template_instructions.txt",
	"src/utils/__init__.py",
	"src/utils/helpers.py",
	"src/utils/api_clients.py",
	"src/utils/latex_utils.py",
	"src/utils/paper_loader.py",
	"src/utils/other_utils.py",
	"src/memory/__init__.py",
	"src/memory/memory_manager.py",
	"src/tests/__init__.py",
	"src/tests/test_agents.py",
	"src/tests/test_workflow.py",
	"Dockerfile",
	".gitignore",
}

// seeds — начальное содержимое отдельных файлов.
// Всё остальное создаётся пустым.
var seeds = map[string]string{
	"configs/config.yaml": `# Настройки проекта. Заполните перед первым запуском.
project:
  name: ""
llm:
  provider: ""
  model: ""
`,
	".gitignore": `__pycache__/
*.pyc
.env
data/experiment_runs/
`,
}
