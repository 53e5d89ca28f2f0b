package httpapi

import "net/http"

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(demoHTML))
}

const demoHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>flip-deal-scoring — demo</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin: 16px; }
    .cols { display: grid; gap: 12px; grid-template-columns: 1fr; }
    @media (min-width: 900px) { .cols { grid-template-columns: 1fr 1fr; } }
    .card { border: 1px solid #e6e6e6; border-radius: 12px; padding: 12px; }
    .grid { display: grid; gap: 12px; }
    label { display: block; font-size: 14px; color: #444; margin-bottom: 2px; }
    input, select { padding: 8px; font-size: 16px; width: 100%; box-sizing: border-box; }
    input[type=range] { padding: 0; }
    button { padding: 10px 14px; font-size: 16px; cursor: pointer; }
    .errors { color: #b00020; font-size: 14px; }
    .total { font-size: 42px; font-weight: 700; }
    .bar { background: #f0f0f0; border-radius: 6px; height: 12px; overflow: hidden; }
    .bar > div { background: #2f6fed; height: 100%; }
    .sub { display: grid; grid-template-columns: 180px 1fr 60px; gap: 8px; align-items: center; font-size: 14px; }
    .muted { color: #666; font-size: 14px; }
    .neg { color: #b00020; }
    .row { display: flex; gap: 8px; flex-wrap: wrap; align-items: center; }
    pre { white-space: pre-wrap; background: #f6f6f6; padding: 10px; border-radius: 8px; font-size: 13px; }
  </style>
</head>
<body>
  <h2>Flip Deal Score</h2>
  <div class="muted">Server: <code><span id="host"></span></code></div>

  <div class="cols" style="margin-top:12px;">
    <div class="grid">
      <div class="card grid">
        <div><label>After-repair value (ARV)</label><input id="arv" value="300000"/></div>
        <div><label>Purchase price</label><input id="price" value="150000"/></div>
        <div><label>Repair costs</label><input id="repairs" value="50000"/></div>
        <div><label>Location score: <b id="locV">8</b>/10</label><input id="loc" type="range" min="1" max="10" value="8"/></div>
        <div><label>Market trend: <b id="trendV">7</b>/10</label><input id="trend" type="range" min="1" max="10" value="7"/></div>
        <div><label>Rental demand: <b id="demandV">6</b>/10</label><input id="demand" type="range" min="1" max="10" value="6"/></div>
        <div><label>Days on market</label><input id="dom" type="number" min="0" value="45"/></div>
        <div><label>Comparable sales</label>
          <select id="comps">
            <option value="0">none</option>
            <option value="1">1-2</option>
            <option value="3">3-4</option>
            <option value="5" selected>5+</option>
          </select>
        </div>
        <div class="errors" id="errors"></div>
      </div>
      <div class="card">
        <div class="row">
          <button id="btnSave">Save deal</button>
          <button id="btnCsv" disabled>Download CSV</button>
        </div>
        <div class="muted" id="saveInfo" style="margin-top:8px;"></div>
      </div>
    </div>

    <div class="grid">
      <div class="card">
        <div class="muted">Deal score</div>
        <div class="total" id="total">—</div>
        <div class="grid" id="bars" style="margin-top:8px;"></div>
      </div>
      <div class="card">
        <div class="muted">Financials</div>
        <div id="metrics" style="margin-top:8px;">—</div>
      </div>
      <div class="card">
        <div class="muted">Advisor</div>
        <div id="advice" style="margin-top:8px;">—</div>
      </div>
      <div class="card">
        <div class="row">
          <button data-share="twitter">Share on X</button>
          <button data-share="facebook">Facebook</button>
          <button data-share="whatsapp">WhatsApp</button>
        </div>
        <div class="muted" id="shareInfo" style="margin-top:8px;"></div>
      </div>
    </div>
  </div>

<script>
document.getElementById("host").textContent = location.host;

const ids = ["arv","price","repairs","loc","trend","demand","dom","comps"];
const el = Object.fromEntries(ids.map(i => [i, document.getElementById(i)]));
let lastResult = null;
let savedId = null;

function money(n) {
  if (typeof n !== "number") return n;
  const s = Math.round(Math.abs(n)).toLocaleString("en-US");
  return (n < 0 ? "-$" : "$") + s;
}

function form() {
  return {
    after_repair_value: el.arv.value,
    purchase_price: el.price.value,
    repair_costs: el.repairs.value,
    location_score: +el.loc.value,
    market_trend: +el.trend.value,
    rental_demand: +el.demand.value,
    days_on_market: +el.dom.value,
    comparable_sales: +el.comps.value
  };
}

function renderBars(subs) {
  const bars = document.getElementById("bars");
  bars.innerHTML = "";
  for (const s of subs) {
    const row = document.createElement("div");
    row.className = "sub";
    const pct = s.max > 0 ? (s.points / s.max) * 100 : 0;
    row.innerHTML = "<div>" + s.name + "</div>" +
      "<div class='bar'><div style='width:" + pct + "%'></div></div>" +
      "<div>" + (Math.round(s.points * 10) / 10) + "/" + s.max + "</div>";
    bars.appendChild(row);
  }
}

function renderMetrics(m, maxOffer) {
  const profitCls = m.expected_profit < 0 ? "neg" : "";
  document.getElementById("metrics").innerHTML =
    "<div>Total cost: <b>" + money(m.total_cost) + "</b></div>" +
    "<div>Expected profit: <b class='" + profitCls + "'>" + money(m.expected_profit) + "</b> (" + m.profit_margin_pct + "% margin)</div>" +
    "<div>Repair ratio: <b>" + m.repair_ratio_pct + "%</b></div>" +
    "<div>Max offer (70% rule): <b>" + money(maxOffer) + "</b></div>";
}

async function rescore() {
  savedId = null;
  document.getElementById("btnCsv").disabled = true;
  document.getElementById("saveInfo").textContent = "";
  try {
    const res = await fetch("/score", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(form())
    });
    const data = await res.json();
    const errEl = document.getElementById("errors");
    if (res.status === 422) {
      errEl.textContent = (data.errors || []).join(" · ");
      document.getElementById("total").textContent = "—";
      lastResult = null;
      return;
    }
    errEl.textContent = "";
    if (!data.result) {
      document.getElementById("total").textContent = "—";
      lastResult = null;
      return;
    }
    lastResult = data.result;
    document.getElementById("total").textContent = data.result.breakdown.total_score + "/100";
    renderBars(data.result.breakdown.sub_scores);
    renderMetrics(data.result.metrics, data.result.max_offer);
    if (data.advice) {
      document.getElementById("advice").innerHTML =
        "<div><b>" + data.advice.verdict + "</b></div>" +
        (data.advice.tips || []).map(t => "<div class='muted'>• " + t + "</div>").join("");
    }
  } catch (e) {
    document.getElementById("errors").textContent = "request failed: " + e.message;
  }
}

for (const id of ids) {
  el[id].addEventListener("input", () => {
    document.getElementById("locV").textContent = el.loc.value;
    document.getElementById("trendV").textContent = el.trend.value;
    document.getElementById("demandV").textContent = el.demand.value;
    rescore();
  });
}

document.getElementById("btnSave").addEventListener("click", async () => {
  const res = await fetch("/deals", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(form())
  });
  const data = await res.json();
  if (res.status === 201) {
    savedId = data.id;
    document.getElementById("btnCsv").disabled = false;
    document.getElementById("saveInfo").textContent = "Saved as " + data.id;
  } else {
    document.getElementById("saveInfo").textContent = "Save failed: " + JSON.stringify(data);
  }
});

document.getElementById("btnCsv").addEventListener("click", () => {
  if (savedId) window.open("/deals/" + encodeURIComponent(savedId) + "/export", "_blank");
});

for (const btn of document.querySelectorAll("[data-share]")) {
  btn.addEventListener("click", async () => {
    if (!lastResult) return;
    const res = await fetch("/share", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({
        platform: btn.dataset.share,
        total_score: lastResult.breakdown.total_score,
        profit_margin_pct: lastResult.metrics.profit_margin_pct,
        expected_profit: lastResult.metrics.expected_profit,
        max_offer: lastResult.max_offer
      })
    });
    const data = await res.json();
    if (data.share && data.share.url) window.open(data.share.url, "_blank");
    document.getElementById("shareInfo").textContent = "Shared " + data.share_count + " times";
  });
}

rescore();
</script>
</body>
</html>`
